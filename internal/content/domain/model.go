// Package domain contains the content collection types served to the
// marketing site and managed from the admin console.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/pkg/localized"
	"gorm.io/datatypes"
)

// Collection identifies one of the managed content collections. The value
// doubles as the permission resource name.
type Collection string

const (
	CollectionServices Collection = "services"
	CollectionProducts Collection = "products"
	CollectionClients  Collection = "clients"
	CollectionBlog     Collection = "blog"
	CollectionNews     Collection = "news"
	CollectionAds      Collection = "ads"
)

var collectionTables = map[Collection]string{
	CollectionServices: "services",
	CollectionProducts: "products",
	CollectionClients:  "clients",
	CollectionBlog:     "blog_posts",
	CollectionNews:     "news_items",
	CollectionAds:      "ads",
}

// Collections returns every managed collection in route-registration order.
func Collections() []Collection {
	return []Collection{
		CollectionServices,
		CollectionProducts,
		CollectionClients,
		CollectionBlog,
		CollectionNews,
		CollectionAds,
	}
}

func (c Collection) Valid() bool {
	_, ok := collectionTables[c]
	return ok
}

func (c Collection) Table() string {
	return collectionTables[c]
}

// HasSlug reports whether records of this collection carry a URL slug.
func (c Collection) HasSlug() bool {
	return c == CollectionBlog || c == CollectionNews
}

// Record is the shared shape of all content collections. Blog and news
// records additionally carry a slug; for the other collections the column
// stays empty.
type Record struct {
	ID          snowflake.ID                 `gorm:"primaryKey" json:"id"`
	Title       localized.Text               `gorm:"not null" json:"title"`
	Description localized.Text               `json:"description"`
	Slug        string                       `gorm:"index" json:"slug,omitempty"`
	ImageURLs   datatypes.JSONSlice[string]  `gorm:"column:image_urls" json:"imageUrls"`
	VideoURLs   datatypes.JSONSlice[string]  `gorm:"column:video_urls" json:"videoUrls"`
	CreatedAt   time.Time                    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time                    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
