package api

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/onemilpixels/pixels-contract/contracts/pixels/pixelconst"
	"github.com/onemilpixels/pixels-contract/internal/metrics"
	"github.com/onemilpixels/pixels-contract/rpc/pixels"
)

// PixelReader reads pixels contract state. It is implemented by
// pixels.ContractReader.
type PixelReader interface {
	GetPixel(id uint32) (*pixels.Pixel, error)
	OwnerOf(id uint32) (util.Uint160, error)
	PriceOf(id uint32) (*big.Int, error)
	AcceptedToken() (util.Uint160, error)
	Admin() (util.Uint160, error)
	Version() (*big.Int, error)
}

// PixelHandler serves pixel queries.
type PixelHandler struct {
	reader PixelReader
}

// NewPixelHandler creates a new PixelHandler.
func NewPixelHandler(reader PixelReader) *PixelHandler {
	return &PixelHandler{reader: reader}
}

// AccountResponse describes an account both as Neo address and script hash.
type AccountResponse struct {
	Address string `json:"address"`
	Hash    string `json:"hash"`
}

// PixelResponse is a pixel record.
type PixelResponse struct {
	ID     uint32          `json:"id"`
	Owner  AccountResponse `json:"owner"`
	Owned  bool            `json:"owned"`
	Colour string          `json:"colour"`
	Price  string          `json:"price"`
}

// PriceResponse is the amount a purchase of the pixel requires.
type PriceResponse struct {
	ID    uint32 `json:"id"`
	Price string `json:"price"`
}

// ContractResponse describes the contract configuration.
type ContractResponse struct {
	Token      AccountResponse `json:"token"`
	Admin      AccountResponse `json:"admin"`
	Version    string          `json:"version"`
	CanvasSize int             `json:"canvas_size"`
}

// GetPixel handles GET /v1/pixels/{id}.
func (h *PixelHandler) GetPixel(w http.ResponseWriter, r *http.Request) {
	id, ok := pixelID(w, r)
	if !ok {
		return
	}

	p, err := h.reader.GetPixel(id)
	metrics.ObserveRPC("getPixel", err)
	if err != nil {
		writeRPCError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PixelResponse{
		ID:     id,
		Owner:  account(p.Owner),
		Owned:  !p.Owner.Equals(util.Uint160{}),
		Colour: p.Colour.String(),
		Price:  p.Price.String(),
	})
}

// GetOwner handles GET /v1/pixels/{id}/owner.
func (h *PixelHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := pixelID(w, r)
	if !ok {
		return
	}

	owner, err := h.reader.OwnerOf(id)
	metrics.ObserveRPC("ownerOf", err)
	if err != nil {
		writeRPCError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, account(owner))
}

// GetPrice handles GET /v1/pixels/{id}/price.
func (h *PixelHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pixelID(w, r)
	if !ok {
		return
	}

	price, err := h.reader.PriceOf(id)
	metrics.ObserveRPC("priceOf", err)
	if err != nil {
		writeRPCError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PriceResponse{ID: id, Price: price.String()})
}

// GetContract handles GET /v1/contract.
func (h *PixelHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	token, err := h.reader.AcceptedToken()
	metrics.ObserveRPC("acceptedToken", err)
	if err != nil {
		writeRPCError(w, err)
		return
	}

	admin, err := h.reader.Admin()
	metrics.ObserveRPC("admin", err)
	if err != nil {
		writeRPCError(w, err)
		return
	}

	version, err := h.reader.Version()
	metrics.ObserveRPC("version", err)
	if err != nil {
		writeRPCError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ContractResponse{
		Token:      account(token),
		Admin:      account(admin),
		Version:    version.String(),
		CanvasSize: pixelconst.CanvasSize,
	})
}

func pixelID(w http.ResponseWriter, r *http.Request) (uint32, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pixel id")
		return 0, false
	}

	if id >= pixelconst.CanvasSize {
		writeError(w, http.StatusNotFound, pixels.ErrOutOfBounds.Error())
		return 0, false
	}

	return uint32(id), true
}

func account(h util.Uint160) AccountResponse {
	return AccountResponse{
		Address: address.Uint160ToString(h),
		Hash:    h.StringLE(),
	}
}
