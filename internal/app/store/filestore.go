package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aseptimu/shortmyurl/internal/app/service"
	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

// FileStore хранит все ссылки одним JSON-объектом в файле.
// Кэша нет: каждая операция перечитывает файл целиком, изменения
// записываются целиком через временный файл и rename.
type FileStore struct {
	mu       sync.RWMutex
	filePath string
	logger   *zap.SugaredLogger
}

func NewFileStore(filePath string, logger *zap.SugaredLogger) *FileStore {
	return &FileStore{
		filePath: filePath,
		logger:   logger,
	}
}

// Load читает хранилище с диска. Если файла нет, создаёт пустой.
// Чтение идёт под разделяемой блокировкой, создание файла только
// под эксклюзивной.
func (fs *FileStore) Load(ctx context.Context) (Links, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fs.mu.RLock()
	links, err := fs.read()
	fs.mu.RUnlock()
	if !errors.Is(err, os.ErrNotExist) {
		return links, err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.load()
}

// Save полностью перезаписывает файл хранилища.
func (fs *FileStore) Save(ctx context.Context, links Links) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.save(links)
}

// load вызывается только под эксклюзивной блокировкой.
func (fs *FileStore) load() (Links, error) {
	links, err := fs.read()
	if !errors.Is(err, os.ErrNotExist) {
		return links, err
	}
	fs.logger.Infow("Store file not found, creating an empty one", "path", fs.filePath)
	links = Links{}
	if err := fs.save(links); err != nil {
		return nil, err
	}
	return links, nil
}

// read разбирает файл хранилища и ничего не пишет на диск.
// Отсутствие файла возвращается как os.ErrNotExist.
func (fs *FileStore) read() (Links, error) {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", fs.filePath, err)
	}

	links := Links{}
	if len(bytes.TrimSpace(data)) == 0 {
		return links, nil
	}
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("decode store %s: %w", fs.filePath, err)
	}
	if links == nil {
		links = Links{}
	}

	for name, record := range links {
		if record.Name != name {
			return nil, fmt.Errorf("decode store %s: key %q holds record %q", fs.filePath, name, record.Name)
		}
		links[name] = normalize(record)
	}
	return links, nil
}

func (fs *FileStore) save(links Links) error {
	if links == nil {
		links = Links{}
	}
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	if dir := filepath.Dir(fs.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir %s: %w", dir, err)
		}
	}
	if err := renameio.WriteFile(fs.filePath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write store %s: %w", fs.filePath, err)
	}

	fs.logger.Debugw("Store saved", "path", fs.filePath, "links", len(links))
	return nil
}

// update выполняет read-modify-write под эксклюзивной блокировкой.
// Если fn вернула ошибку, файл не перезаписывается.
func (fs *FileStore) update(ctx context.Context, fn func(Links) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	links, err := fs.load()
	if err != nil {
		return err
	}
	if err := fn(links); err != nil {
		return err
	}
	return fs.save(links)
}

func (fs *FileStore) Create(ctx context.Context, record service.ShortLinkRecord) error {
	return fs.update(ctx, func(links Links) error {
		if _, exists := links[record.Name]; exists {
			return service.ErrNameTaken
		}
		links[record.Name] = normalize(record)
		return nil
	})
}

func (fs *FileStore) RecordVisit(ctx context.Context, name string, visit service.Visit) (service.ShortLinkRecord, error) {
	var updated service.ShortLinkRecord
	err := fs.update(ctx, func(links Links) error {
		record, exists := links[name]
		if !exists {
			return service.ErrNotFound
		}
		record.VisitCount++
		record.VisitHistory = append(record.VisitHistory, visit)
		links[name] = record
		updated = record
		return nil
	})
	if err != nil {
		return service.ShortLinkRecord{}, err
	}
	return updated, nil
}

func (fs *FileStore) Get(ctx context.Context, name string) (service.ShortLinkRecord, error) {
	links, err := fs.Load(ctx)
	if err != nil {
		return service.ShortLinkRecord{}, err
	}
	record, exists := links[name]
	if !exists {
		return service.ShortLinkRecord{}, service.ErrNotFound
	}
	return record, nil
}

// Ping проверяет, что файл хранилища читается и разбирается.
func (fs *FileStore) Ping(ctx context.Context) error {
	_, err := fs.Load(ctx)
	return err
}
