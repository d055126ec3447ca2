package mock

import (
	"context"

	"github.com/eatulrajput/campusgpt"
)

var _ campusgpt.PageService = (*PageService)(nil)

// PageService is a mock implementation of campusgpt.PageService.
type PageService struct {
	UpsertPageFn    func(ctx context.Context, page *campusgpt.Page) error
	FindPageByURLFn func(ctx context.Context, url string) (*campusgpt.Page, error)
	ListPagesFn     func(ctx context.Context) ([]*campusgpt.Page, error)
	CountPagesFn    func(ctx context.Context) (int, error)
}

func (s *PageService) UpsertPage(ctx context.Context, page *campusgpt.Page) error {
	return s.UpsertPageFn(ctx, page)
}

func (s *PageService) FindPageByURL(ctx context.Context, url string) (*campusgpt.Page, error) {
	return s.FindPageByURLFn(ctx, url)
}

func (s *PageService) ListPages(ctx context.Context) ([]*campusgpt.Page, error) {
	return s.ListPagesFn(ctx)
}

func (s *PageService) CountPages(ctx context.Context) (int, error) {
	return s.CountPagesFn(ctx)
}
