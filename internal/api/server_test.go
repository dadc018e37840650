package api

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/onemilpixels/pixels-contract/rpc/pixels"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockReader struct {
	pixels map[uint32]pixels.Pixel
	token  util.Uint160
	admin  util.Uint160
	err    error
	panics bool
}

func newMockReader() *mockReader {
	return &mockReader{
		pixels: make(map[uint32]pixels.Pixel),
		token:  util.Uint160{0xaa},
		admin:  util.Uint160{0xbb},
	}
}

func (m *mockReader) get(id uint32) (pixels.Pixel, error) {
	if m.panics {
		panic("reader panic")
	}
	if m.err != nil {
		return pixels.Pixel{}, m.err
	}
	p, ok := m.pixels[id]
	if !ok {
		return pixels.Pixel{Price: new(big.Int)}, nil
	}
	return p, nil
}

func (m *mockReader) GetPixel(id uint32) (*pixels.Pixel, error) {
	p, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *mockReader) OwnerOf(id uint32) (util.Uint160, error) {
	p, err := m.get(id)
	return p.Owner, err
}

func (m *mockReader) PriceOf(id uint32) (*big.Int, error) {
	p, err := m.get(id)
	if err != nil {
		return nil, err
	}
	if p.Owner.Equals(util.Uint160{}) {
		return big.NewInt(10), nil
	}
	return new(big.Int).Mul(p.Price, big.NewInt(2)), nil
}

func (m *mockReader) AcceptedToken() (util.Uint160, error) { return m.token, m.err }
func (m *mockReader) Admin() (util.Uint160, error)         { return m.admin, m.err }
func (m *mockReader) Version() (*big.Int, error)           { return big.NewInt(2000), m.err }

func doRequest(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var v T
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestGetPixel(t *testing.T) {
	r := newMockReader()
	owner := util.Uint160{1, 2, 3}
	r.pixels[5] = pixels.Pixel{Owner: owner, Colour: pixels.Colour{0xff, 0, 0}, Price: big.NewInt(20)}
	srv := NewServer(zaptest.NewLogger(t), r)

	w := doRequest(t, srv, "/v1/pixels/5")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	p := decode[PixelResponse](t, w)
	require.Equal(t, PixelResponse{
		ID:     5,
		Owner:  AccountResponse{Address: address.Uint160ToString(owner), Hash: owner.StringLE()},
		Owned:  true,
		Colour: "#ff0000",
		Price:  "20",
	}, p)

	w = doRequest(t, srv, "/v1/pixels/6")
	require.Equal(t, http.StatusOK, w.Code)
	p = decode[PixelResponse](t, w)
	require.False(t, p.Owned)
	require.Equal(t, "#000000", p.Colour)
}

func TestGetOwnerAndPrice(t *testing.T) {
	r := newMockReader()
	owner := util.Uint160{4, 5, 6}
	r.pixels[1] = pixels.Pixel{Owner: owner, Price: big.NewInt(15)}
	srv := NewServer(zaptest.NewLogger(t), r)

	w := doRequest(t, srv, "/v1/pixels/1/owner")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, owner.StringLE(), decode[AccountResponse](t, w).Hash)

	w = doRequest(t, srv, "/v1/pixels/1/price")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, PriceResponse{ID: 1, Price: "30"}, decode[PriceResponse](t, w))

	w = doRequest(t, srv, "/v1/pixels/2/price")
	require.Equal(t, PriceResponse{ID: 2, Price: "10"}, decode[PriceResponse](t, w))
}

func TestGetContract(t *testing.T) {
	r := newMockReader()
	srv := NewServer(zaptest.NewLogger(t), r)

	w := doRequest(t, srv, "/v1/contract")
	require.Equal(t, http.StatusOK, w.Code)

	c := decode[ContractResponse](t, w)
	require.Equal(t, r.token.StringLE(), c.Token.Hash)
	require.Equal(t, r.admin.StringLE(), c.Admin.Hash)
	require.Equal(t, "2000", c.Version)
	require.Equal(t, 1_000_000, c.CanvasSize)
}

func TestErrors(t *testing.T) {
	r := newMockReader()
	srv := NewServer(zaptest.NewLogger(t), r)

	for path, code := range map[string]int{
		"/v1/pixels/abc":     http.StatusBadRequest,
		"/v1/pixels/-1":      http.StatusBadRequest,
		"/v1/pixels/1000000": http.StatusNotFound,
		"/v1/unknown":        http.StatusNotFound,
	} {
		w := doRequest(t, srv, path)
		require.Equal(t, code, w.Code, path)
	}

	r.err = errors.New("invocation failed: at instruction 10 (THROW): unhandled exception: \"pixel id out of bounds\"")
	w := doRequest(t, srv, "/v1/pixels/1")
	require.Equal(t, http.StatusNotFound, w.Code)

	r.err = errors.New("invocation failed: unhandled exception: \"invalid call data\"")
	w = doRequest(t, srv, "/v1/pixels/1/owner")
	require.Equal(t, http.StatusBadRequest, w.Code)

	r.err = errors.New("connection refused")
	w = doRequest(t, srv, "/v1/contract")
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, "contract invocation failed", decode[errorResponse](t, w).Error)

	r.err = nil
	r.panics = true
	w = doRequest(t, srv, "/v1/pixels/1")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	srv := NewServer(zaptest.NewLogger(t), newMockReader())

	w := doRequest(t, srv, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, w))

	doRequest(t, srv, "/v1/pixels/1")

	w = doRequest(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.True(t, strings.Contains(body, "pixels_requests_total"))
	require.True(t, strings.Contains(body, "pixels_rpc_calls_total"))
}
