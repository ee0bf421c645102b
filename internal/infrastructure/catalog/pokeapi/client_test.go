package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex/internal/infrastructure/config"
)

var fakeNames = []string{"bulbasaur", "ivysaur", "venusaur", "charmander", "charmeleon", "charizard", "squirtle", "pikachu", "raichu"}

// fakeServer serves a small subset of the PokeAPI surface.
func fakeServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32

	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "dex-test", r.Header.Get("User-Agent"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		results := []namedResource{}
		for i := offset; i < len(fakeNames) && i < offset+limit; i++ {
			results = append(results, namedResource{
				Name: fakeNames[i],
				URL:  fmt.Sprintf("%s/pokemon/%d/", srv.URL, i+1),
			})
		}
		_ = json.NewEncoder(w).Encode(listResponse{Count: len(fakeNames), Results: results})
	})
	mux.HandleFunc("/pokemon/{key}/", servePokemon(&hits))
	mux.HandleFunc("/pokemon/{key}", servePokemon(&hits))
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/garbage", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func servePokemon(hits *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		key := r.PathValue("key")
		id := 0
		for i, n := range fakeNames {
			if n == key || strconv.Itoa(i+1) == key {
				id = i + 1
			}
		}
		if key == "slow" {
			time.Sleep(600 * time.Millisecond)
		}
		if id == 0 {
			http.NotFound(w, r)
			return
		}
		_, _ = fmt.Fprintf(w, pokemonJSON, id, fakeNames[id-1])
	}
}

// Types are deliberately out of slot order.
const pokemonJSON = `{
  "id": %d,
  "name": %q,
  "height": 4,
  "weight": 60,
  "types": [
    {"slot": 2, "type": {"name": "flying", "url": ""}},
    {"slot": 1, "type": {"name": "electric", "url": ""}}
  ],
  "stats": [
    {"base_stat": 35, "stat": {"name": "hp", "url": ""}},
    {"base_stat": 55, "stat": {"name": "attack", "url": ""}}
  ],
  "sprites": {
    "front_default": "https://img.example/front.png",
    "other": {
      "dream_world": {"front_default": null},
      "official-artwork": {"front_default": "https://img.example/art.png"}
    }
  }
}`

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(config.CatalogConfig{
		BaseURL:   baseURL + "/",
		Timeout:   150 * time.Millisecond,
		UserAgent: "dex-test",
	})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(config.CatalogConfig{BaseURL: "  "})
	require.Error(t, err)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := newTestClient(t, "http://example.test")
	assert.Equal(t, "http://example.test", c.BaseURL())
}

func TestListPage(t *testing.T) {
	srv, _ := fakeServer(t)
	c := newTestClient(t, srv.URL)

	refs, err := c.ListPage(context.Background(), 3, 3)
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, "charmander", refs[0].Name)
	assert.Equal(t, "charizard", refs[2].Name)
	assert.Equal(t, srv.URL+"/pokemon/4/", refs[0].URL)
}

func TestListPage_PastEnd(t *testing.T) {
	srv, _ := fakeServer(t)
	c := newTestClient(t, srv.URL)

	refs, err := c.ListPage(context.Background(), 100, 12)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestListPage_ZeroLimitSkipsRequest(t *testing.T) {
	srv, hits := fakeServer(t)
	c := newTestClient(t, srv.URL)

	refs, err := c.ListPage(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, refs)
	assert.Equal(t, int32(0), hits.Load())
}

func TestResolve(t *testing.T) {
	srv, _ := fakeServer(t)
	c := newTestClient(t, srv.URL)

	creature, err := c.Resolve(context.Background(), srv.URL+"/pokemon/8/")
	require.NoError(t, err)
	require.NotNil(t, creature)

	assert.Equal(t, 8, creature.ID)
	assert.Equal(t, "pikachu", creature.Name)
	assert.Equal(t, []string{"electric", "flying"}, creature.Types)
	assert.Equal(t, 35, creature.HP())
	assert.Equal(t, "https://img.example/art.png", creature.ImageURL)
	assert.InDelta(t, 0.4, creature.HeightMeters(), 0.001)
	assert.InDelta(t, 6.0, creature.WeightKilograms(), 0.001)
}

func TestResolve_NotFoundIsAnError(t *testing.T) {
	srv, _ := fakeServer(t)
	c := newTestClient(t, srv.URL)

	_, err := c.Resolve(context.Background(), srv.URL+"/pokemon/9999/")
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
}

func TestResolve_ServerError(t *testing.T) {
	srv, _ := fakeServer(t)
	c := newTestClient(t, srv.URL)

	_, err := c.Resolve(context.Background(), srv.URL+"/broken")
	require.Error(t, err)

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, http.StatusInternalServerError, ne.StatusCode)
	assert.Equal(t, "resolve", ne.Op)
}

func TestResolve_DecodeError(t *testing.T) {
	srv, _ := fakeServer(t)
	c := newTestClient(t, srv.URL)

	_, err := c.Resolve(context.Background(), srv.URL+"/garbage")
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
	assert.Contains(t, err.Error(), "decoding response")
}

func TestLookupByName(t *testing.T) {
	srv, _ := fakeServer(t)
	c := newTestClient(t, srv.URL)

	creature, err := c.LookupByName(context.Background(), "  PikaChu ")
	require.NoError(t, err)
	require.NotNil(t, creature)
	assert.Equal(t, "pikachu", creature.Name)
}

func TestLookupByName_NotFound(t *testing.T) {
	srv, _ := fakeServer(t)
	c := newTestClient(t, srv.URL)

	creature, err := c.LookupByName(context.Background(), "pika")
	require.NoError(t, err)
	assert.Nil(t, creature)
}

func TestLookupByName_BlankSkipsRequest(t *testing.T) {
	srv, hits := fakeServer(t)
	c := newTestClient(t, srv.URL)

	creature, err := c.LookupByName(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, creature)
	assert.Equal(t, int32(0), hits.Load())
}

func TestRequestTimeout(t *testing.T) {
	srv, _ := fakeServer(t)
	c := newTestClient(t, srv.URL)

	_, err := c.LookupByName(context.Background(), "slow")
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
}

func TestConnectionRefused(t *testing.T) {
	srv, _ := fakeServer(t)
	c := newTestClient(t, srv.URL)
	srv.Close()

	_, err := c.ListPage(context.Background(), 0, 3)
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
}

func TestSprites_Fallback(t *testing.T) {
	front := "front.png"
	dream := "dream.svg"
	empty := ""

	var s sprites
	assert.Equal(t, "", s.image())

	s.FrontDefault = &front
	assert.Equal(t, "front.png", s.image())

	s.Other.OfficialArtwork.FrontDefault = &empty
	s.Other.DreamWorld.FrontDefault = &dream
	assert.Equal(t, "dream.svg", s.image())
}
