// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProductStatus is the publication state of a product. The storefront only
// ever exposes [ProductStatusPublished] products.
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusProposed  ProductStatus = "proposed"
	ProductStatusPublished ProductStatus = "published"
	ProductStatusRejected  ProductStatus = "rejected"
)

// Product is the catalog entity served by the storefront products API.
//
// Scalar attributes map one-to-one to columns of the "products" table and
// their JSON names are the names accepted by the `fields` query parameter.
// Relation attributes are populated only when the relation was requested
// through `expand` (or a route default); otherwise they stay nil and are
// removed from the response by the projection step.
type Product struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Subtitle      *string       `json:"subtitle"`
	Status        ProductStatus `json:"status"`
	ExternalID    *string       `json:"external_id"`
	Description   *string       `json:"description"`
	Handle        *string       `json:"handle"`
	IsGiftcard    bool          `json:"is_giftcard"`
	Discountable  bool          `json:"discountable"`
	Thumbnail     *string       `json:"thumbnail"`
	ProfileID     *string       `json:"profile_id"`
	CollectionID  *string       `json:"collection_id"`
	TypeID        *string       `json:"type_id"`
	Weight        *int64        `json:"weight"`
	Length        *int64        `json:"length"`
	Height        *int64        `json:"height"`
	Width         *int64        `json:"width"`
	HSCode        *string       `json:"hs_code"`
	OriginCountry *string       `json:"origin_country"`
	MIDCode       *string       `json:"mid_code"`
	Material      *string       `json:"material"`
	CreatedAt     *time.Time    `json:"created_at"`
	UpdatedAt     *time.Time    `json:"updated_at"`
	DeletedAt     *time.Time    `json:"deleted_at"`
	Metadata      Metadata      `json:"metadata"`

	Variants      []ProductVariant   `json:"variants"`
	Options       []ProductOption    `json:"options"`
	Images        []Image            `json:"images"`
	Tags          []ProductTag       `json:"tags"`
	Collection    *ProductCollection `json:"collection"`
	Type          *ProductType       `json:"type"`
	SalesChannels []SalesChannel     `json:"sales_channels"`
}

// TableName returns the name of the database table associated with
// the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductVariant is a purchasable variation of a product (size, colour...).
type ProductVariant struct {
	ID                string               `json:"id"`
	ProductID         string               `json:"product_id"`
	Title             string               `json:"title"`
	SKU               *string              `json:"sku"`
	Barcode           *string              `json:"barcode"`
	EAN               *string              `json:"ean"`
	UPC               *string              `json:"upc"`
	InventoryQuantity int64                `json:"inventory_quantity"`
	AllowBackorder    bool                 `json:"allow_backorder"`
	ManageInventory   bool                 `json:"manage_inventory"`
	VariantRank       int64                `json:"variant_rank"`
	CreatedAt         *time.Time           `json:"created_at"`
	UpdatedAt         *time.Time           `json:"updated_at"`
	Prices            []MoneyAmount        `json:"prices,omitempty"`
	Options           []ProductOptionValue `json:"options,omitempty"`
}

// MoneyAmount is a single price of a variant. Amount is stored in the
// smallest currency unit.
type MoneyAmount struct {
	ID           string  `json:"id"`
	VariantID    string  `json:"variant_id"`
	CurrencyCode string  `json:"currency_code"`
	Amount       int64   `json:"amount"`
	MinQuantity  *int64  `json:"min_quantity"`
	MaxQuantity  *int64  `json:"max_quantity"`
	RegionID     *string `json:"region_id"`
}

// ProductOption is an option axis of a product ("Size", "Color").
type ProductOption struct {
	ID        string               `json:"id"`
	ProductID string               `json:"product_id"`
	Title     string               `json:"title"`
	Values    []ProductOptionValue `json:"values,omitempty"`
}

// ProductOptionValue binds a concrete option value to a variant.
type ProductOptionValue struct {
	ID        string `json:"id"`
	OptionID  string `json:"option_id"`
	VariantID string `json:"variant_id"`
	Value     string `json:"value"`
}

type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type ProductTag struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type ProductCollection struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

type ProductType struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// SalesChannel is a storefront/market through which products are sold.
// Publishable API keys are scoped to one or more sales channels.
type SalesChannel struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsDisabled  bool    `json:"is_disabled"`
}
