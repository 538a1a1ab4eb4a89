package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/audit"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 商品の登録・一覧・更新。不変条件はフィールド検証のみ。
type CatalogUsecase struct {
	tx       repo.TransactionManager
	products repo.ProductRepository
	trail    *audit.Trail
}

// DI
func NewCatalogUsecase(tx repo.TransactionManager, products repo.ProductRepository, trail *audit.Trail) *CatalogUsecase {
	return &CatalogUsecase{tx: tx, products: products, trail: trail}
}

type AddProductInput struct {
	ID       string
	Name     string
	Price    float64
	Stock    int64
	Category string
}

func (u *CatalogUsecase) AddProduct(ctx context.Context, in AddProductInput) error {
	if strings.TrimSpace(in.ID) == "" || strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusUnprocessableEntity, "id and name required")
	}
	if in.Price < 0 || in.Stock < 0 {
		return NewHTTPError(http.StatusUnprocessableEntity, "price and stock must be >= 0")
	}

	err := u.products.Create(ctx, model.Product{
		ID:       strings.TrimSpace(in.ID),
		Name:     strings.TrimSpace(in.Name),
		Price:    in.Price,
		Stock:    in.Stock,
		Category: in.Category,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateID) {
			return NewHTTPError(http.StatusUnprocessableEntity, "product id already exists")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.trail.Append(fmt.Sprintf("ADD PRODUCT %s %s price:%g stock:%d", in.ID, in.Name, in.Price, in.Stock))
	return nil
}

type ListProductsInput struct {
	Page     int
	Limit    int
	Category string
	Q        string
}

type ProductListOutput struct {
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Data  []model.Product `json:"data"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	//page/limitは1未満なら1に繰り上げる
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 1
	}

	items, err := u.products.List(ctx, repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Category: in.Category,
		Q:        strings.TrimSpace(in.Q),
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Page:  in.Page,
		Limit: in.Limit,
		Data:  items,
	}, nil
}

type UpdateProductInput struct {
	Name     *string
	Price    *float64
	Stock    *int64
	Category *string
}

// UpdateProductは指定のあったフィールドだけ更新する。
// 作成時と同じ検証（価格・在庫の非負）を更新時にも課す。
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, productID string, in UpdateProductInput) error {
	if strings.TrimSpace(productID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	patch := repo.ProductPatch{
		Name:     in.Name,
		Price:    in.Price,
		Stock:    in.Stock,
		Category: in.Category,
	}
	if patch.Empty() {
		return NewHTTPError(http.StatusBadRequest, "no fields to update")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return NewHTTPError(http.StatusUnprocessableEntity, "name required")
	}
	if in.Price != nil && *in.Price < 0 {
		return NewHTTPError(http.StatusUnprocessableEntity, "price must be >= 0")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return NewHTTPError(http.StatusUnprocessableEntity, "stock must be >= 0")
	}

	//在庫の書き換えと他フィールドの更新を同じトランザクションに載せる
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if in.Stock != nil {
			if err := r.Stock().SetStock(ctx, productID, *in.Stock); err != nil {
				return err
			}
		}
		rest := repo.ProductPatch{
			Name:     in.Name,
			Price:    in.Price,
			Category: in.Category,
		}
		if rest.Empty() {
			return nil
		}
		return r.Products().Patch(ctx, productID, rest)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.trail.Append(fmt.Sprintf("UPDATE PRODUCT %s", productID))
	return nil
}
