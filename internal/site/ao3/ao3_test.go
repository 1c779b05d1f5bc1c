package ao3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/ficgrab/internal/site"
)

const listing = `<html><body><ol class="work index group">
<li class="work blurb group" id="work_111">
  <div class="header module">
    <h4 class="heading">
      <a href="/works/111">First Work</a>
      by
      <a rel="author" href="/users/alice/pseuds/alice">alice</a>
    </h4>
    <p class="datetime">02 Jan 2020</p>
  </div>
  <ul class="tags commas">
    <li class="freeforms"><a class="tag" href="/tags/Fluff/works">Fluff</a></li>
    <li class="freeforms"><a class="tag" href="/tags/Angst/works">Angst</a></li>
  </ul>
  <blockquote class="userstuff summary"><p>A summary.</p></blockquote>
  <dl class="stats">
    <dt>Words:</dt><dd class="words">12,345</dd>
    <dt>Chapters:</dt><dd class="chapters">3/?</dd>
  </dl>
</li>
<li class="work blurb group" id="work_222">
  <h4 class="heading"><a href="http://archiveofourown.org/works/222/chapters/9">Second</a></h4>
  <dl class="stats"><dd class="words">800</dd><dd class="chapters">1/1</dd></dl>
</li>
<li class="work blurb group" id="work_111_dup">
  <h4 class="heading"><a href="/works/111/">First Work</a></h4>
</li>
<li class="work blurb group"><h4 class="heading">no link here</h4></li>
</ol></body></html>`

func TestParseScan(t *testing.T) {
	s := New()

	fics, err := site.ParseScan(s, "https://archiveofourown.org/tags/Fluff/works", []byte(listing))
	require.NoError(t, err)
	require.Len(t, fics, 2)

	first := fics[0]
	assert.Equal(t, "https://archiveofourown.org/works/111", first.Link)
	assert.Equal(t, "111", first.SiteID)
	assert.Equal(t, "First Work", first.Title)
	assert.Equal(t, "alice", first.Author)
	assert.Equal(t, "https://archiveofourown.org/users/alice", first.AuthorLink)
	assert.Equal(t, 12345, first.Words)
	assert.Equal(t, 3, first.Chapters)
	assert.Equal(t, []string{"Fluff", "Angst"}, first.Tags)
	assert.Equal(t, "A summary.", first.Summary)
	assert.Equal(t, "02 Jan 2020", first.Updated)
	assert.Equal(t, Name, first.SiteName())

	second := fics[1]
	assert.Equal(t, "https://archiveofourown.org/works/222", second.Link)
	assert.Equal(t, 800, second.Words)
	assert.Equal(t, 1, second.Chapters)
}

func TestParseScanEmpty(t *testing.T) {
	fics, err := site.ParseScan(New(), "https://archiveofourown.org/works", []byte("<html></html>"))
	require.NoError(t, err)
	assert.Empty(t, fics)
}

func TestFicLinkFromID(t *testing.T) {
	got, err := site.FicLinkFromID(New(), "12345", "")
	require.NoError(t, err)
	assert.Equal(t, "https://archiveofourown.org/works/12345", got)

	_, err = site.FicLinkFromID(New(), " ", "")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	s := New()

	assert.Equal(t, "https://archiveofourown.org/works/5",
		s.NormalizeFicLink("http://archiveofourown.org/works/5/chapters/77?view_adult=true", ""))
	assert.Equal(t, "https://archiveofourown.org/users/bob",
		s.NormalizeAuthorLink("/users/bob/pseuds/bobby/works", "https://archiveofourown.org/"))
	assert.Equal(t, "https://archiveofourown.org/collections/x",
		s.NormalizeFicLink("https://archiveofourown.org/collections/x/", ""))
}

func TestFetchLink(t *testing.T) {
	s := New()

	assert.Equal(t, "https://archiveofourown.org/works/5?view_adult=true", s.FetchLink("https://archiveofourown.org/works/5"))
	assert.Equal(t, "https://archiveofourown.org/works?page=2&view_adult=true", s.FetchLink("https://archiveofourown.org/works?page=2"))
}

func TestPageLinks(t *testing.T) {
	got := site.PageLinks(New(), "https://archiveofourown.org/tags/Fluff/works?page=1", 3)
	assert.Equal(t, []string{
		"https://archiveofourown.org/tags/Fluff/works?page=1",
		"https://archiveofourown.org/tags/Fluff/works?page=2",
		"https://archiveofourown.org/tags/Fluff/works?page=3",
	}, got)
}
