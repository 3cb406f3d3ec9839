// ABOUTME: Extractor for Madara-themed WordPress manga sites
// ABOUTME: Two-tier chapter discovery: admin-ajax chapter list, then on-page links

package extract

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"mangawatch/core/domain"
	"mangawatch/core/interfaces"
)

const ajaxChaptersAction = "manga_get_chapters"

var (
	slugPattern    = regexp.MustCompile(`/manga/([^/?#]+)`)
	postIDPattern  = regexp.MustCompile(`postid-(\d+)`)
	shortlinkIDRe  = regexp.MustCompile(`[?&]p=(\d+)`)
	chapterHrefRe  = regexp.MustCompile(`chapter[-_/]?(\d+(?:\.\d+)?)`)
	titleSuffixSep = regexp.MustCompile(`\s+[-–|]\s+`)
)

// MadaraExtractor extracts chapter progress from sites built on the
// Madara WordPress theme. The detail page carries title and thumbnail;
// the freshest chapter list comes from the theme's admin-ajax endpoint,
// with on-page chapter links as the fallback tier.
type MadaraExtractor struct {
	deps     interfaces.Dependencies
	site     string
	baseURL  *url.URL
	siteName string
}

// NewMadaraExtractor creates an extractor for one Madara site.
// site is the identifier used in composite item IDs, baseURL the site
// origin, and siteName the suffix the site appends to page titles.
func NewMadaraExtractor(deps interfaces.Dependencies, site, baseURL, siteName string) (*MadaraExtractor, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	return &MadaraExtractor{
		deps:     deps,
		site:     site,
		baseURL:  parsed,
		siteName: siteName,
	}, nil
}

// Site returns the site identifier
func (m *MadaraExtractor) Site() string {
	return m.site
}

// Match reports whether the URL belongs to this site's manga pages
func (m *MadaraExtractor) Match(pageURL string) bool {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return false
	}
	return parsed.Host == m.baseURL.Host && slugPattern.MatchString(parsed.Path)
}

// Extract produces a normalized record from a detail page. Only the
// identity fields are load-bearing; everything else defaults when the
// HTML has drifted.
func (m *MadaraExtractor) Extract(ctx context.Context, html []byte, sourceURL string) (*domain.ExtractedRecord, error) {
	rec := &domain.ExtractedRecord{
		Site:  m.site,
		Slug:  m.slugFromURL(sourceURL),
		Title: domain.UnknownTitle,
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		// Unreadable document: identity is still usable, the rest defaults.
		return rec, nil
	}

	if title := m.pageTitle(doc); title != "" {
		rec.Title = title
	}
	rec.Thumbnail = m.thumbnail(doc)

	if postID := m.postID(doc, html); postID != "" {
		m.fetchLatestChapter(ctx, postID, rec)
	}

	if rec.LatestChapterNum == 0 {
		m.latestChapterFromPage(doc, sourceURL, rec)
	}

	return rec, nil
}

// slugFromURL parses the item identifier out of the detail-page path
func (m *MadaraExtractor) slugFromURL(sourceURL string) string {
	match := slugPattern.FindStringSubmatch(sourceURL)
	if match == nil {
		return ""
	}
	return match[1]
}

// pageTitle reads the document title and strips the site-name suffix
func (m *MadaraExtractor) pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return ""
	}

	if parts := titleSuffixSep.Split(title, -1); len(parts) > 1 {
		last := strings.TrimSpace(parts[len(parts)-1])
		if m.siteName != "" && strings.EqualFold(last, m.siteName) {
			title = strings.TrimSpace(strings.Join(parts[:len(parts)-1], " - "))
		}
	}
	if m.siteName != "" {
		title = strings.TrimSpace(strings.TrimSuffix(title, m.siteName))
		title = strings.TrimRight(title, " -–|")
		title = strings.TrimSpace(title)
	}

	return title
}

// thumbnail prefers the Open Graph image, falling back to the first
// content image carrying an alt attribute
func (m *MadaraExtractor) thumbnail(doc *goquery.Document) string {
	if img, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok && img != "" {
		return img
	}

	var found string
	doc.Find("img[alt]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if src, ok := sel.Attr("data-src"); ok && src != "" {
			found = src
			return false
		}
		if src, ok := sel.Attr("src"); ok && src != "" {
			found = src
			return false
		}
		return true
	})
	return found
}

// postID recovers the internal WordPress post id, preferring the
// shortlink element over the body class
func (m *MadaraExtractor) postID(doc *goquery.Document, html []byte) string {
	if href, ok := doc.Find(`link[rel="shortlink"]`).First().Attr("href"); ok {
		if match := shortlinkIDRe.FindStringSubmatch(href); match != nil {
			return match[1]
		}
	}

	if match := postIDPattern.FindSubmatch(html); match != nil {
		return string(match[1])
	}
	return ""
}

// fetchLatestChapter asks the theme's admin-ajax endpoint for the chapter
// list and fills the record from the first (latest) entry. Any failure
// here is logged and swallowed so the on-page fallback tier can run.
func (m *MadaraExtractor) fetchLatestChapter(ctx context.Context, postID string, rec *domain.ExtractedRecord) {
	if m.deps.HTTPClient == nil {
		return
	}

	endpoint := m.baseURL.ResolveReference(&url.URL{Path: "/wp-admin/admin-ajax.php"}).String()
	form := url.Values{
		"action": {ajaxChaptersAction},
		"manga":  {postID},
	}

	resp, err := m.deps.HTTPClient.Post(ctx, endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		m.logSecondaryFailure(postID, err.Error())
		return
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		m.logSecondaryFailure(postID, "non-success status")
		return
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		m.logSecondaryFailure(postID, err.Error())
		return
	}

	frag, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		m.logSecondaryFailure(postID, err.Error())
		return
	}

	entry := frag.Find("li.wp-manga-chapter").First()
	link := entry.Find("a").First()
	if link.Length() == 0 {
		return
	}

	label := strings.TrimSpace(link.Text())
	href, _ := link.Attr("href")

	rec.LatestChapter = label
	rec.LatestChapterNum = ParseChapterNumber(label)
	rec.LatestChapterURL = m.absoluteURL(href, m.baseURL.String())
	rec.LastUpdatedLabel = strings.TrimSpace(entry.Find("span.chapter-release-date").First().Text())
}

// latestChapterFromPage is the fallback tier: the first on-page link that
// looks like a chapter link, with the number parsed from the href itself
func (m *MadaraExtractor) latestChapterFromPage(doc *goquery.Document, sourceURL string, rec *domain.ExtractedRecord) {
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		match := chapterHrefRe.FindStringSubmatch(strings.ToLower(href))
		if match == nil {
			return true
		}

		label := strings.TrimSpace(sel.Text())
		if label == "" {
			label = "Chapter " + match[1]
		}

		rec.LatestChapter = label
		rec.LatestChapterNum = ParseChapterNumber(match[1])
		rec.LatestChapterURL = m.absoluteURL(href, sourceURL)
		return false
	})
}

// absoluteURL resolves href against base, returning href unchanged when
// either side does not parse
func (m *MadaraExtractor) absoluteURL(href, base string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func (m *MadaraExtractor) logSecondaryFailure(postID, reason string) {
	if m.deps.Logger == nil {
		return
	}
	m.deps.Logger.Warn("chapter list request failed, using on-page links", map[string]interface{}{
		"site":    m.site,
		"post_id": postID,
		"reason":  reason,
	})
}
