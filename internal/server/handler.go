package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/langcard/pkg/cache"
	"github.com/matzehuels/langcard/pkg/card"
	"github.com/matzehuels/langcard/pkg/card/langs"
	apperrors "github.com/matzehuels/langcard/pkg/errors"
	"github.com/matzehuels/langcard/pkg/langstats"
	"github.com/matzehuels/langcard/pkg/observability"
)

// cacheMinSeconds is the lower clamp for the cache_seconds parameter.
// Requests may shorten the configured TTL down to this, never below, and
// never extend it.
const cacheMinSeconds = 60

// recognized query parameters, in the order they form the cache key.
var cacheKeyParams = []string{
	"username", "layout", "theme", "locale",
	"hide", "hide_title", "hide_border", "hide_progress",
	"card_width", "langs_count", "border_radius", "disable_animations",
	"title_color", "text_color", "bg_color", "border_color",
	"custom_title", "stats_format",
	"exclude_repo", "size_weight", "count_weight",
}

func (s *Server) handleTopLangs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := loggerFromContext(ctx)
	q := r.URL.Query()

	ttl := s.cacheTTL(q.Get("cache_seconds"))
	key := cache.Key("top-langs", canonicalParams(q))

	if body, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "response")
		writeSVG(w, body, ttl, "HIT")
		return
	}
	observability.Cache().OnCacheMiss(ctx, "response")

	opts := cardOptions(q)

	table, err := langstats.Aggregate(ctx, s.fetcher, langstats.Options{
		Username:     q.Get("username"),
		ExcludeRepos: splitList(q.Get("exclude_repo")),
		SizeWeight:   q.Get("size_weight"),
		CountWeight:  q.Get("count_weight"),
	})
	if err != nil {
		logger.Warn("aggregation failed", "username", q.Get("username"), "err", err)
		s.writeErrorCard(w, err, opts)
		return
	}

	svg, err := langs.RenderCard(ctx, table, opts)
	if err != nil {
		logger.Warn("render failed", "layout", opts.Layout, "err", err)
		s.writeErrorCard(w, err, opts)
		return
	}

	body := []byte(svg)
	if err := s.cache.Set(ctx, key, body, ttl); err != nil {
		logger.Warn("response cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "response", len(body))
	}
	writeSVG(w, body, ttl, "MISS")
}

// cardOptions maps the query parameters onto renderer options. Unknown or
// malformed values fall back to the documented defaults.
func cardOptions(q url.Values) langs.CardOptions {
	return langs.CardOptions{
		Layout:     langs.Layout(q.Get("layout")),
		Width:      parseInt(q.Get("card_width")),
		LangsCount: parseInt(q.Get("langs_count")),
		Hide:       splitList(q.Get("hide")),

		Theme: q.Get("theme"),
		Colors: card.Overrides{
			Title:      q.Get("title_color"),
			Text:       q.Get("text_color"),
			Background: q.Get("bg_color"),
			Border:     q.Get("border_color"),
		},
		Locale:    q.Get("locale"),
		FullTitle: q.Get("custom_title"),

		BorderRadius:      parseFloat(q.Get("border_radius")),
		HideTitle:         parseBool(q.Get("hide_title")),
		HideBorder:        parseBool(q.Get("hide_border")),
		HideProgress:      parseBool(q.Get("hide_progress")),
		DisableAnimations: parseBool(q.Get("disable_animations")),
		Format:            langs.DisplayFormat(q.Get("stats_format")),

		Username: q.Get("username"),
	}
}

// writeErrorCard answers a failed request with a small themed card carrying
// the user-facing message, so embedding contexts still get an image.
func (s *Server) writeErrorCard(w http.ResponseWriter, err error, opts langs.CardOptions) {
	colors := card.ResolveColors(opts.Theme, opts.Colors)
	c := &card.Card{
		Width:  card.ClampWidth(opts.Width),
		Height: 120,
		Title:  "Something went wrong",
		Colors: colors,
		CSS: fmt.Sprintf(`    .error { font: 400 12px "Segoe UI", Ubuntu, Sans-Serif; fill: %s; }`,
			colors.Text),
		Body: fmt.Sprintf(`    <text x="25" y="11" class="error">%s</text>`+"\n",
			card.EscapeXML(apperrors.UserMessage(err))),
		BorderRadius:      opts.BorderRadius,
		HideBorder:        opts.HideBorder,
		DisableAnimations: true,
	}

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusFor(err))
	_, _ = w.Write([]byte(c.Render()))
}

// statusFor keeps the HTTP status meaningful even though the body is always
// an SVG card.
func statusFor(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeMissingParam, apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidLayout, apperrors.ErrCodeInvalidTheme:
		return http.StatusBadRequest
	case apperrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeMissingToken:
		return http.StatusInternalServerError
	case apperrors.ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeSVG(w http.ResponseWriter, body []byte, ttl time.Duration, cacheStatus string) {
	seconds := int(ttl.Seconds())
	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control",
		fmt.Sprintf("max-age=%d, s-maxage=%d, stale-while-revalidate=86400", seconds/2, seconds))
	w.Header().Set("X-Cache", cacheStatus)
	_, _ = w.Write(body)
}

// cacheTTL clamps a requested cache_seconds into [cacheMinSeconds, config
// TTL]; anything unparsable keeps the configured TTL.
func (s *Server) cacheTTL(param string) time.Duration {
	ttl := s.cfg.Cache.TTL()
	seconds, err := strconv.Atoi(param)
	if err != nil {
		return ttl
	}
	requested := time.Duration(seconds) * time.Second
	if requested < cacheMinSeconds*time.Second {
		requested = cacheMinSeconds * time.Second
	}
	if requested > ttl {
		return ttl
	}
	return requested
}

// canonicalParams reduces the query to the recognized parameter set so the
// cache key is stable under reordering and unknown additions.
func canonicalParams(q url.Values) map[string]string {
	params := make(map[string]string, len(cacheKeyParams))
	for _, name := range cacheKeyParams {
		if v := q.Get(name); v != "" {
			params[name] = v
		}
	}
	return params
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(s)
	return err == nil && v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
