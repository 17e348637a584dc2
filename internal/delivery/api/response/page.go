package response

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Page is the envelope of a paginated listing.
type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// NewPage builds the envelope for page. Links keep the request's query string
// and are made absolute against baseURL. The link back to the first page carries no page parameter.
func NewPage(c echo.Context, baseURL string, count int64, page int, hasNext, hasPrevious bool, results any) Page {
	env := Page{Count: count, Results: results}

	if hasNext {
		link := pageLink(c, baseURL, page+1)
		env.Next = &link
	}
	if hasPrevious {
		link := pageLink(c, baseURL, page-1)
		env.Previous = &link
	}

	return env
}

func pageLink(c echo.Context, baseURL string, page int) string {
	req := c.Request()

	query := url.Values{}
	for k, v := range req.URL.Query() {
		query[k] = v
	}
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}

	link := AbsoluteURL(c, baseURL, req.URL.Path)
	if encoded := query.Encode(); encoded != "" {
		link += "?" + encoded
	}

	return link
}

// AbsoluteURL prefixes path with baseURL, or with the request's scheme and host when baseURL is empty.
func AbsoluteURL(c echo.Context, baseURL, path string) string {
	if baseURL == "" {
		baseURL = c.Scheme() + "://" + c.Request().Host
	}

	return baseURL + path
}
