// Package store содержит реализации хранилища коротких ссылок:
// JSON-файл, память процесса и PostgreSQL.
package store

import "github.com/aseptimu/shortmyurl/internal/app/service"

// Links отображает короткое имя в запись. Ключ всегда равен record.Name.
type Links map[string]service.ShortLinkRecord

var (
	_ service.Store = (*FileStore)(nil)
	_ service.Store = (*InMemoryStore)(nil)
	_ service.Store = (*Database)(nil)
)

// normalize приводит запись к виду, в котором она отдаётся наружу.
func normalize(record service.ShortLinkRecord) service.ShortLinkRecord {
	if record.VisitHistory == nil {
		record.VisitHistory = []service.Visit{}
	}
	return record
}
