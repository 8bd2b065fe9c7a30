// Package service содержит бизнес-логику работы с короткими ссылками.
package service

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Visit описывает один переход по короткой ссылке.
type Visit struct {
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
}

// ShortLinkRecord хранит данные одной короткой ссылки вместе со статистикой переходов.
type ShortLinkRecord struct {
	Name         string    `json:"name"`
	TargetURL    string    `json:"target_url"`
	ShortURL     string    `json:"short_url"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedByIP  string    `json:"created_by_ip"`
	VisitCount   int       `json:"visits"`
	VisitHistory []Visit   `json:"visit_history"`
}

type Store interface {
	StoreURLGetter
	StoreURLSetter
	Ping(ctx context.Context) error
}

// StoreURLSetter сохраняет новую запись. Если имя занято, возвращает ErrNameTaken.
type StoreURLSetter interface {
	Create(ctx context.Context, record ShortLinkRecord) error
}

type URLShortener interface {
	ShortenURL(ctx context.Context, targetURL, name, clientIP string) (ShortLinkRecord, error)
}

// reservedNames совпадают со статическими маршрутами сервера,
// по таким ссылкам редирект был бы недостижим. Маршруты gin
// чувствительны к регистру, поэтому сравнение точное.
var reservedNames = map[string]struct{}{
	"shorten": {},
	"api":     {},
	"ping":    {},
	"metrics": {},
}

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

type URLService struct {
	store      StoreURLSetter
	baseDomain string
	now        func() time.Time
}

func NewURLService(store StoreURLSetter, baseDomain string) *URLService {
	return &URLService{
		store:      store,
		baseDomain: strings.TrimRight(baseDomain, "/"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *URLService) isValidURL(input string) bool {
	parsedURI, err := url.ParseRequestURI(input)
	return err == nil && parsedURI.Scheme != "" && parsedURI.Host != ""
}

// ShortenURL проверяет ввод и создаёт новую короткую ссылку name -> targetURL.
// Проверки выполняются по порядку, возвращается первая найденная ошибка.
func (s *URLService) ShortenURL(ctx context.Context, targetURL, name, clientIP string) (ShortLinkRecord, error) {
	if targetURL == "" || name == "" {
		return ShortLinkRecord{}, ErrMissingField
	}
	if !s.isValidURL(targetURL) {
		return ShortLinkRecord{}, ErrInvalidURL
	}
	if !namePattern.MatchString(name) {
		return ShortLinkRecord{}, ErrInvalidName
	}
	if _, reserved := reservedNames[name]; reserved {
		return ShortLinkRecord{}, ErrNameTaken
	}

	record := ShortLinkRecord{
		Name:         name,
		TargetURL:    targetURL,
		ShortURL:     s.baseDomain + "/" + name,
		CreatedAt:    s.now(),
		CreatedByIP:  clientIP,
		VisitCount:   0,
		VisitHistory: []Visit{},
	}

	if err := s.store.Create(ctx, record); err != nil {
		return ShortLinkRecord{}, err
	}

	return record, nil
}
