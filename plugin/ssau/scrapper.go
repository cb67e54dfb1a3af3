package ssau

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gocolly/colly"
)

const DefaultBaseURL = "https://ssau.ru/rasp"

// FetchClient скачивает страницу расписания группы
type FetchClient struct {
	baseURL string
}

func NewFetchClient(baseURL string) *FetchClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &FetchClient{baseURL: baseURL}
}

// URL адрес страницы расписания для группы и недели
func (f *FetchClient) URL(groupID, week int) (string, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return "", fmt.Errorf("bad base url %q: %w", f.baseURL, err)
	}
	q := u.Query()
	q.Set("groupId", strconv.Itoa(groupID))
	q.Set("selectedWeek", strconv.Itoa(week))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch скачать страницу. Ни ретраев, ни своих таймаутов, ошибка просто возвращается.
func (f *FetchClient) Fetch(groupID, week int) (string, error) {
	link, err := f.URL(groupID, week)
	if err != nil {
		return "", err
	}

	c := colly.NewCollector()
	var body string
	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})

	if err := c.Visit(link); err != nil {
		return "", fmt.Errorf("fetch %s: %w", link, err)
	}

	// Переносы строк на сайте ломают текст внутри тегов
	return strings.ReplaceAll(body, "\n", " "), nil
}
