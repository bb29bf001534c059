package extractor

import (
	"net/http"

	"github.com/linkrot/linkrot/pkg/models"
	"github.com/tomnomnom/linkheader"
)

// LinkHeader extracts the URLs carried by a response's Link headers,
// in the form:
//
//	<url1>; rel="next", <url2>; rel="preload"; as="style"
//
// Header links have no document position.
func LinkHeader(header http.Header) []*models.RawLink {
	var links []*models.RawLink
	for _, value := range header.Values("Link") {
		for _, link := range linkheader.Parse(value) {
			if link.URL == "" {
				continue
			}
			links = append(links, models.NewRawLink(link.URL, 0, 0))
		}
	}
	return links
}
