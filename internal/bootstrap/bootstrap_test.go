package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swcatalog/starwars/internal/app/models/dto"
	"github.com/swcatalog/starwars/internal/app/schema"
	"github.com/swcatalog/starwars/internal/config"
	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/swapi"
)

// pagedCatalog serves pages[resource][i] for cursor "next-<i>"
type pagedCatalog struct {
	pages map[swapi.Resource][][]swapi.Record
	calls atomic.Int32
}

func (c *pagedCatalog) FetchPage(_ context.Context, resource swapi.Resource, cursor string) (*swapi.Page, error) {
	c.calls.Add(1)
	pages := c.pages[resource]
	idx := 0
	if cursor != "" {
		idx = int(cursor[len(cursor)-1] - '0')
	}
	if idx >= len(pages) {
		return &swapi.Page{}, nil
	}
	page := &swapi.Page{Results: pages[idx]}
	if idx+1 < len(pages) {
		page.Next = "next-" + string(rune('0'+idx+1))
	}
	return page, nil
}

func newTestRouter(t *testing.T, catalog *pagedCatalog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.OpenSQLite(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(database.Close)
	require.NoError(t, schema.Apply(context.Background(), database, zerolog.Nop()))

	if catalog == nil {
		catalog = &pagedCatalog{}
	}
	deps := BuildDependencies(database, catalog, zerolog.Nop())
	return SetupRouter(&config.Config{}, deps, database)
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestStarshipLifecycle(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/naves", `{"name":"X-wing","model":"T-65"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.CreatedResponse](t, w)
	assert.Positive(t, created.ID)
	assert.NotEmpty(t, created.Message)

	w = do(t, router, http.MethodGet, "/naves/"+itoa(created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	ship := decode[map[string]any](t, w)
	assert.Equal(t, "X-wing", ship["name"])
	assert.Equal(t, "T-65", ship["model"])
	assert.Contains(t, ship, "cost_in_credits")
	assert.Nil(t, ship["cost_in_credits"])

	w = do(t, router, http.MethodDelete, "/naves/"+itoa(created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[dto.MessageResponse](t, w).Message)

	w = do(t, router, http.MethodGet, "/naves/"+itoa(created.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStarshipNegativeCostRejected(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/naves", `{"name":"Broken","cost_in_credits":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decode[dto.ErrorResponse](t, w).Code)
}

func TestPlanetsLazyImportDeduplicates(t *testing.T) {
	catalog := &pagedCatalog{pages: map[swapi.Resource][][]swapi.Record{
		swapi.Planets: {
			{{"name": "Tatooine", "diameter": "10465", "population": "200000"}},
			{{"name": "Tatooine", "diameter": "unknown"}},
		},
	}}
	router := newTestRouter(t, catalog)

	w := do(t, router, http.MethodGet, "/planetas", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	planets := decode[[]map[string]any](t, w)
	require.Len(t, planets, 1)
	assert.Equal(t, "Tatooine", planets[0]["name"])
	assert.EqualValues(t, 10465, planets[0]["diameter"])
	assert.Equal(t, int32(2), catalog.calls.Load())

	// A populated table is served without touching the catalog.
	w = do(t, router, http.MethodGet, "/planetas", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)
	assert.Equal(t, int32(2), catalog.calls.Load())
}

func TestEmptyCatalogListsEmptyArray(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/veiculos", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeleteUnknownSpecies(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodDelete, "/especies/9999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Code)
}

func TestNonPositiveIDNotFound(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/especies/0"},
		{http.MethodGet, "/planetas/-1"},
		{http.MethodGet, "/favorito/0"},
	} {
		w := do(t, router, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)
		assert.Equal(t, dto.ErrorCodeResourceNotFound, decode[dto.ErrorResponse](t, w).Code, tc.path)
	}
}

func TestNonNumericID(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, path := range []string{"/personagens/abc", "/filmes/1x", "/favorito/delete/luke"} {
		method := http.MethodGet
		if strings.Contains(path, "delete") {
			method = http.MethodDelete
		}
		w := do(t, router, method, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, dto.ErrorCodeBadRequest, decode[dto.ErrorResponse](t, w).Code, path)
	}
}

func TestMovieBadReleaseDate(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/filmes", `{
		"title":"A New Hope","episode_id":4,"opening_crawl":"It is a period of civil war.",
		"director":"George Lucas","producer":"Gary Kurtz","release_date":"25/05/1977"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Contains(t, resp.Error, "release_date")
}

func TestMovieCreateAndGet(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/filmes", `{
		"title":"A New Hope","episode_id":4,"opening_crawl":"It is a period of civil war.",
		"director":"George Lucas","producer":"Gary Kurtz","release_date":"1977-05-25",
		"planets":["https://swapi.dev/api/planets/1/"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[dto.CreatedResponse](t, w).ID

	w = do(t, router, http.MethodGet, "/filmes/"+itoa(id), "")
	require.Equal(t, http.StatusOK, w.Code)
	movie := decode[map[string]any](t, w)
	assert.Equal(t, "1977-05-25", movie["release_date"])
	assert.Equal(t, []any{"https://swapi.dev/api/planets/1/"}, movie["planets"])
	assert.Equal(t, []any{}, movie["characters"])
}

func TestMalformedBody(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/personagens", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, body := range []string{`{"height":172}`, `{"name":"   "}`} {
		w = do(t, router, http.MethodPost, "/personagens", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, dto.ErrorCodeValidationFailed, decode[dto.ErrorResponse](t, w).Code, body)
	}
}

func TestHomeworldIsFreeText(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/personagens", `{"name":"Luke","homeworld":"Tatooine"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[dto.CreatedResponse](t, w).ID

	w = do(t, router, http.MethodGet, "/personagens/"+itoa(id), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tatooine", decode[map[string]any](t, w)["homeworld"])

	w = do(t, router, http.MethodPost, "/especies", `{"name":"Wookie","homeworld":"Kashyyyk"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestFavoritesLegacyRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/favorito/save",
		`{"character_id":1,"planet_id":3,"student_name1":"Leia","registration1":"2024001"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[dto.CreatedResponse](t, w).ID

	w = do(t, router, http.MethodGet, "/favoritos", "")
	require.Equal(t, http.StatusOK, w.Code)
	favs := decode[[]map[string]any](t, w)
	require.Len(t, favs, 1)
	assert.EqualValues(t, 3, favs[0]["planet_id"])
	assert.Nil(t, favs[0]["movie_id"])

	w = do(t, router, http.MethodGet, "/favorito/"+itoa(id), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Leia", decode[map[string]any](t, w)["student_name1"])

	w = do(t, router, http.MethodDelete, "/favorito/delete/"+itoa(id), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/favorito", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestFavoriteRequiresCharacter(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/favoritos", `{"student_name1":"Leia","registration1":"2024001"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decode[dto.ErrorResponse](t, w).Code)
}

func TestSystemEndpoints(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[dto.HealthResponse](t, w).Status)

	w = do(t, router, http.MethodGet, "/endpoints", "")
	require.Equal(t, http.StatusOK, w.Code)
	endpoints := decode[[]dto.EndpointInfo](t, w)
	assert.Contains(t, endpoints, dto.EndpointInfo{Method: http.MethodGet, Path: "/naves/:id"})
	assert.Contains(t, endpoints, dto.EndpointInfo{Method: http.MethodPost, Path: "/favorito/save"})
	assert.Contains(t, endpoints, dto.EndpointInfo{Method: http.MethodGet, Path: "/favorito/:id"})
	assert.Contains(t, endpoints, dto.EndpointInfo{Method: http.MethodDelete, Path: "/favorito/delete/:id"})

	w = do(t, router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
