package service

import (
	"context"
	"time"
)

// StoreURLGetter описывает методы чтения записей и учёта переходов.
//
// RecordVisit обязан атомарно увеличить счётчик и дописать visit в историю,
// для отсутствующего имени возвращается ErrNotFound без записи в хранилище.
type StoreURLGetter interface {
	Get(ctx context.Context, name string) (ShortLinkRecord, error)
	RecordVisit(ctx context.Context, name string, visit Visit) (ShortLinkRecord, error)
}

// URLGetter предоставляет переходы по ссылкам и статистику для клиентского кода.
type URLGetter interface {
	Resolve(ctx context.Context, name, clientIP string) (ShortLinkRecord, error)
	GetStats(ctx context.Context, name string) (ShortLinkRecord, error)
}

// GetURLService реализует URLGetter через StoreURLGetter.
type GetURLService struct {
	store StoreURLGetter
	now   func() time.Time
}

// NewGetURLService создаёт новый GetURLService на основе переданного хранилища.
func NewGetURLService(store StoreURLGetter) *GetURLService {
	return &GetURLService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Resolve засчитывает переход по ссылке name и возвращает обновлённую запись.
// Целевой URL для редиректа берётся из record.TargetURL.
func (s *GetURLService) Resolve(ctx context.Context, name, clientIP string) (ShortLinkRecord, error) {
	if name == "" {
		return ShortLinkRecord{}, ErrNotFound
	}
	return s.store.RecordVisit(ctx, name, Visit{IP: clientIP, Timestamp: s.now()})
}

// GetStats возвращает запись целиком, ничего не изменяя.
func (s *GetURLService) GetStats(ctx context.Context, name string) (ShortLinkRecord, error) {
	if name == "" {
		return ShortLinkRecord{}, ErrNotFound
	}
	return s.store.Get(ctx, name)
}
