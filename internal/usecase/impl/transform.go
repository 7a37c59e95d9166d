package impl

import (
	"slices"
	"strings"
	"time"

	"bitablog/config"
	"bitablog/internal/domain/entity"

	"github.com/tidwall/gjson"
)

const (
	defaultTitle = "Untitled"

	// articleDateLayout keeps numeric timestamps sortable as strings.
	articleDateLayout = "2006-01-02 15:04:05"
)

// TransformRecords maps raw Bitable records to articles ordered by date, newest first.
// Records with an empty date sort last; equal dates keep their upstream order.
func TransformRecords(records []entity.RawRecord, fields config.FieldMapping) []*entity.Article {
	articles := make([]*entity.Article, 0, len(records))
	for _, record := range records {
		articles = append(articles, toArticle(record, fields))
	}

	slices.SortStableFunc(articles, func(a, b *entity.Article) int {
		return strings.Compare(b.Date, a.Date)
	})

	return articles
}

func toArticle(record entity.RawRecord, fields config.FieldMapping) *entity.Article {
	title := fieldText(record, fields.Title, "text")
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}

	return &entity.Article{
		ID:      record.RecordID,
		Title:   title,
		Date:    fieldDate(record, fields.Date),
		Quote:   fieldText(record, fields.Quote, "text"),
		Summary: fieldText(record, fields.Summary, "text"),
		Link:    fieldText(record, fields.Link, "link"),
	}
}

// fieldText flattens a Bitable cell into plain text. Rich-text cells are arrays of segments
// whose "text" values are concatenated; object cells yield objectKey, falling back to "text".
func fieldText(record entity.RawRecord, name, objectKey string) string {
	raw, ok := record.Fields[name]
	if !ok || len(raw) == 0 {
		return ""
	}

	return cellText(gjson.ParseBytes(raw), objectKey)
}

func cellText(value gjson.Result, objectKey string) string {
	switch {
	case value.IsArray():
		var sb strings.Builder
		for _, segment := range value.Array() {
			sb.WriteString(cellText(segment, objectKey))
		}

		return sb.String()
	case value.IsObject():
		if v := value.Get(objectKey); v.Exists() {
			return v.String()
		}

		return value.Get("text").String()
	case value.Type == gjson.Null:
		return ""
	default:
		return value.String()
	}
}

// fieldDate returns date cells as sortable strings. Date columns arrive as millisecond
// timestamps; text columns are passed through.
func fieldDate(record entity.RawRecord, name string) string {
	raw, ok := record.Fields[name]
	if !ok || len(raw) == 0 {
		return ""
	}

	value := gjson.ParseBytes(raw)
	if value.Type == gjson.Number {
		return time.UnixMilli(value.Int()).UTC().Format(articleDateLayout)
	}

	return cellText(value, "text")
}
