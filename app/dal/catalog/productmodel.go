package catalog

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
)

type (
	Product struct {
		Id            string   `json:"id"`
		Name          string   `json:"name"`
		Price         int64    `json:"price"`
		OriginalPrice int64    `json:"originalPrice,optional"`
		Kind          Kind     `json:"kind"`
		Color         string   `json:"color,optional"`
		Material      []string `json:"material,optional"`
		Fit           string   `json:"fit,optional"`
		Pattern       string   `json:"pattern,optional"`
		Season        []Season `json:"season,optional"`
		Gender        Gender   `json:"gender,optional"`
		Tags          []string `json:"tags,optional"`
		Image         string   `json:"image,optional"`
		StoreId       string   `json:"storeId"`
	}

	Shop struct {
		Id                    string `json:"id"`
		Name                  string `json:"name"`
		DeliveryFee           int64  `json:"deliveryFee,optional"`
		FreeDeliveryThreshold int64  `json:"freeDeliveryThreshold,optional"`
	}

	// File is the on-disk layout of a catalog.
	File struct {
		Shops    []Shop    `json:"shops,optional"`
		Products []Product `json:"products,optional"`
	}

	// CatalogModel is the read-only catalog provider. Nothing in the core
	// mutates what it returns.
	CatalogModel interface {
		Products(ctx context.Context) []*Product
		FindProduct(ctx context.Context, id string) (*Product, error)
		FindShop(ctx context.Context, id string) (*Shop, error)
	}

	memoryCatalogModel struct {
		products []*Product
		byId     map[string]*Product
		shops    map[string]*Shop
	}
)

var _ CatalogModel = (*memoryCatalogModel)(nil)

// NewCatalogModel returns a catalog over the given products and shops, kept in
// the order they were supplied.
func NewCatalogModel(products []Product, shops []Shop) CatalogModel {
	m := &memoryCatalogModel{
		products: make([]*Product, 0, len(products)),
		byId:     make(map[string]*Product, len(products)),
		shops:    make(map[string]*Shop, len(shops)),
	}
	for i := range products {
		p := products[i]
		if _, ok := m.byId[p.Id]; ok {
			continue
		}
		m.products = append(m.products, &p)
		m.byId[p.Id] = &p
	}
	for i := range shops {
		s := shops[i]
		m.shops[s.Id] = &s
	}
	return m
}

// MustLoadCatalogModel loads a catalog file (json, yaml or toml) with go-zero conf.
func MustLoadCatalogModel(path string) CatalogModel {
	m, err := LoadCatalogModel(path)
	if err != nil {
		panic(err)
	}
	return m
}

func LoadCatalogModel(path string) (CatalogModel, error) {
	var f File
	if err := conf.Load(path, &f); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return NewCatalogModel(f.Products, f.Shops), nil
}

func (m *memoryCatalogModel) Products(_ context.Context) []*Product {
	out := make([]*Product, len(m.products))
	copy(out, m.products)
	return out
}

func (m *memoryCatalogModel) FindProduct(_ context.Context, id string) (*Product, error) {
	if p, ok := m.byId[id]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (m *memoryCatalogModel) FindShop(_ context.Context, id string) (*Shop, error) {
	if s, ok := m.shops[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
