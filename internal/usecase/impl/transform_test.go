package impl

import (
	"encoding/json"
	"testing"

	"bitablog/config"
	"bitablog/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string, fields map[string]string) entity.RawRecord {
	raw := make(map[string]json.RawMessage, len(fields))
	for name, value := range fields {
		raw[name] = json.RawMessage(value)
	}

	return entity.RawRecord{RecordID: id, Fields: raw}
}

func TestTransformRecords_NewestFirst(t *testing.T) {
	records := []entity.RawRecord{
		record("r1", map[string]string{"标题": `"A"`, "创建日期": `"2024-01-02"`}),
		record("r2", map[string]string{"标题": `"B"`, "创建日期": `"2024-01-05"`}),
	}

	articles := TransformRecords(records, config.DefaultFieldMapping())

	require.Len(t, articles, 2)
	assert.Equal(t, &entity.Article{ID: "r2", Title: "B", Date: "2024-01-05"}, articles[0])
	assert.Equal(t, &entity.Article{ID: "r1", Title: "A", Date: "2024-01-02"}, articles[1])
}

func TestTransformRecords_Empty(t *testing.T) {
	articles := TransformRecords(nil, config.DefaultFieldMapping())
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestTransformRecords_MissingFieldsAndOrdering(t *testing.T) {
	records := []entity.RawRecord{
		record("undated", map[string]string{"标题": `"No date"`}),
		record("first", map[string]string{"创建日期": `"2024-03-01"`}),
		record("second", map[string]string{"标题": `"   "`, "创建日期": `"2024-03-01"`}),
		record("older", map[string]string{"标题": `"Old"`, "创建日期": `"2023-12-31"`}),
	}

	articles := TransformRecords(records, config.DefaultFieldMapping())

	require.Len(t, articles, len(records))
	ids := make([]string, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"first", "second", "older", "undated"}, ids, "ties keep upstream order, empty dates sort last")

	assert.Equal(t, defaultTitle, articles[0].Title)
	assert.Equal(t, defaultTitle, articles[1].Title)
	assert.Empty(t, articles[3].Date)
	assert.Empty(t, articles[3].Quote)
	assert.Empty(t, articles[3].Summary)
	assert.Empty(t, articles[3].Link)
}

func TestTransformRecords_CellShapes(t *testing.T) {
	records := []entity.RawRecord{
		record("r1", map[string]string{
			"标题":       `[{"type":"text","text":"Hello "},{"type":"text","text":"World"}]`,
			"创建日期":     `1704448800000`,
			"金句输出":     `[{"type":"text","text":"<quote>"}]`,
			"概要内容输出":   `null`,
			"AI知识文章链接": `{"link":"https://example.com/a","text":"Example"}`,
		}),
	}

	articles := TransformRecords(records, config.DefaultFieldMapping())

	require.Len(t, articles, 1)
	assert.Equal(t, &entity.Article{
		ID:      "r1",
		Title:   "Hello World",
		Date:    "2024-01-05 10:00:00",
		Quote:   "<quote>",
		Summary: "",
		Link:    "https://example.com/a",
	}, articles[0])
}

func TestTransformRecords_LinkObjectWithoutURL(t *testing.T) {
	records := []entity.RawRecord{
		record("r1", map[string]string{"AI知识文章链接": `{"text":"just text"}`}),
	}

	assert.Equal(t, "just text", TransformRecords(records, config.DefaultFieldMapping())[0].Link)
}

func TestTransformRecords_CustomMapping(t *testing.T) {
	fields := config.FieldMapping{Title: "title", Date: "date", Quote: "quote", Summary: "summary", Link: "url"}
	records := []entity.RawRecord{
		record("r1", map[string]string{"title": `"Custom"`, "url": `"https://example.com"`, "标题": `"ignored"`}),
	}

	article := TransformRecords(records, fields)[0]
	assert.Equal(t, "Custom", article.Title)
	assert.Equal(t, "https://example.com", article.Link)
}
