package lol

import (
	"context"

	"github.com/alnah/go-lolapi/internal/request"
	"github.com/alnah/go-lolapi/region"
)

// Shard is a region's status page entry.
type Shard struct {
	Hostname  string   `json:"hostname"`
	Locales   []string `json:"locales"`
	Name      string   `json:"name"`
	RegionTag string   `json:"region_tag"`
	Slug      string   `json:"slug"`
}

// Translation is a localized incident message.
type Translation struct {
	Content   string `json:"content"`
	Locale    string `json:"locale"`
	UpdatedAt string `json:"updated_at"`
}

// Message is one update to an incident.
type Message struct {
	Author       string        `json:"author"`
	Content      string        `json:"content"`
	CreatedAt    string        `json:"created_at"`
	ID           string        `json:"id"`
	Severity     string        `json:"severity"`
	Translations []Translation `json:"translations"`
	UpdatedAt    string        `json:"updated_at"`
}

// Incident is a reported problem with a service.
type Incident struct {
	Active    bool      `json:"active"`
	CreatedAt string    `json:"created_at"`
	ID        int64     `json:"id"`
	Updates   []Message `json:"updates"`
}

// Service is one component of a shard, such as the game or the store.
type Service struct {
	Incidents []Incident `json:"incidents"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Status    string     `json:"status"`
}

// ShardStatus is a shard with the state of its services.
type ShardStatus struct {
	Hostname  string    `json:"hostname"`
	Locales   []string  `json:"locales"`
	Name      string    `json:"name"`
	RegionTag string    `json:"region_tag"`
	Services  []Service `json:"services"`
	Slug      string    `json:"slug"`
}

// Shards lists every shard. Status calls go to the status host over plain
// HTTP.
func (c *Client) Shards(ctx context.Context) ([]Shard, error) {
	return do[[]Shard](ctx, c, request.Endpoint{Scope: request.Global, Path: "/shards", Status: true})
}

// Shard returns the status of one region's services.
func (c *Client) Shard(ctx context.Context, r region.Region) (ShardStatus, error) {
	if r.IsZero() {
		return ShardStatus{}, region.ErrUnknownRegion
	}
	return do[ShardStatus](ctx, c, request.Endpoint{Scope: request.Global, Path: "/shards/" + r.String(), Status: true})
}
