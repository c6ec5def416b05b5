package client

import "context"

// Filter narrows client listings.
type Filter struct {
	Type       *string
	SoftwareID *uint
	Page       int
	PageSize   int
}

type Repository interface {
	Create(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Client, error)
	GetBySID(ctx context.Context, sid string) (*Client, error)
	GetByEmail(ctx context.Context, email string) (*Client, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Client, int64, error)
	CountBySoftwareID(ctx context.Context, softwareID uint) (int64, error)
}
