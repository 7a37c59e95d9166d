package impl

import (
	"encoding/json"

	"bitablog/config"
	"bitablog/internal/domain/entity"
	"bitablog/internal/usecase"
)

func testConfig(debug bool) *config.Config {
	cfg := &config.Config{
		Feishu:   &config.FeishuConfig{Fields: config.DefaultFieldMapping()},
		Comments: &config.CommentsConfig{DefaultAuthor: config.DefaultAuthor},
		QRCode:   &config.QRCodeConfig{BaseURL: "https://blog.example.com/"},
	}
	cfg.Env.Debug = debug

	return cfg
}

func fetchedRecords(records ...entity.RawRecord) usecase.FetchResult {
	if records == nil {
		records = []entity.RawRecord{}
	}

	return usecase.FetchResult{Records: records}
}

func articleRecord(id, title, link string) entity.RawRecord {
	fields := map[string]json.RawMessage{
		"标题":   json.RawMessage(`"` + title + `"`),
		"创建日期": json.RawMessage(`"2024-01-05"`),
	}
	if link != "" {
		fields["AI知识文章链接"] = json.RawMessage(`{"link":"` + link + `"}`)
	}

	return entity.RawRecord{RecordID: id, Fields: fields}
}
