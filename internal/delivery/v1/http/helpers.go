package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const (
	maxImageCount = 10
	maxFileSize   = 15 << 20
	maxJSONBody   = 1 << 20
	maxIDsPerCall = 100
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ProductMetadata struct {
	Name         string
	CategoryName string
	Price        int64
	Stock        int64
	Tiers        []TierDTO
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

var statusBySentinel = []struct {
	err  error
	code int
}{
	{e.ErrProductNotFound, http.StatusNotFound},
	{e.ErrAddressNotFound, http.StatusNotFound},
	{e.ErrCouponNotFound, http.StatusNotFound},
	{e.ErrOrderNotFound, http.StatusNotFound},
	{e.ErrConcurrentUpdate, http.StatusConflict},
	{e.ErrInvalidOrderStatus, http.StatusConflict},
	{e.ErrInsufficientStock, http.StatusConflict},
	{e.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{e.ErrExpectedMultipart, http.StatusBadRequest},
	{e.ErrExpectedJSON, http.StatusBadRequest},
	{e.ErrMissingFields, http.StatusBadRequest},
	{e.ErrInvalidPrice, http.StatusBadRequest},
	{e.ErrPricePrecision, http.StatusBadRequest},
	{e.ErrTooManyImages, http.StatusBadRequest},
	{e.ErrNoImages, http.StatusBadRequest},
	{e.ErrProductNameRequired, http.StatusBadRequest},
	{e.ErrCategoryRequired, http.StatusBadRequest},
	{e.ErrPriceMustBePositive, http.StatusBadRequest},
	{e.ErrInvalidDiscountTier, http.StatusBadRequest},
	{e.ErrTooManyDiscountTiers, http.StatusBadRequest},
	{e.ErrInvalidQuantity, http.StatusBadRequest},
	{e.ErrInvalidProductID, http.StatusBadRequest},
	{e.ErrInvalidOwner, http.StatusBadRequest},
	{e.ErrNoProducts, http.StatusBadRequest},
	{e.ErrEmptyQuote, http.StatusBadRequest},
	{e.ErrTooManyQuoteItems, http.StatusBadRequest},
	{e.ErrStoreNameRequired, http.StatusBadRequest},
	{e.ErrAddressFieldsRequired, http.StatusBadRequest},
	{e.ErrTooManyAddresses, http.StatusBadRequest},
	{e.ErrAddressRequired, http.StatusBadRequest},
	{e.ErrInvalidCoupon, http.StatusBadRequest},
	{e.ErrCouponInactive, http.StatusBadRequest},
	{e.ErrCouponExpired, http.StatusBadRequest},
	{e.ErrCouponMinSubtotal, http.StatusBadRequest},
	{e.ErrInvalidPaymentMethod, http.StatusBadRequest},
	{e.ErrEmptyOrder, http.StatusBadRequest},
	{e.ErrStatusBadRequest, http.StatusBadRequest},
}

// ToHTTPResponse переводит ошибку в статус и текст для клиента.
// Неизвестные ошибки отдаются как 500 без подробностей.
func ToHTTPResponse(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, e.ErrFileTooLarge.Error()
	}

	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return s.code, s.err.Error()
		}
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst. Неизвестные поля считаются ошибкой.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedJSON)
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	return nil
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Rejects negatives, more than 2 decimal places and values above 1B.
func parsePriceToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, e.ErrMissingFields
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.IsNegative() {
		return 0, e.ErrInvalidPrice
	}

	if d.GreaterThan(decimal.NewFromInt(1_000_000_000)) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return 0, e.ErrPricePrecision
	}

	return d.Shift(2).Round(0).IntPart(), nil
}

// parseQuantity не отвергает количество: пустое значение даёт 1,
// нечисловое или отрицательное 0, дробное округляется вниз.
func parseQuantity(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return floatToQuantity(f)
}

func floatToQuantity(f float64) int64 {
	f = math.Floor(f)
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}

func pathInt64(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || v <= 0 {
		return 0, e.Wrap(name, e.ErrInvalidProductID)
	}
	return v, nil
}

// parseIDs разбирает "1,2,3". Повторы убираются, порядок сохраняется.
func parseIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, e.ErrNoProducts
	}

	parts := strings.Split(raw, ",")
	if len(parts) > maxIDsPerCall {
		return nil, e.Wrap(fmt.Sprintf("at most %d ids", maxIDsPerCall), e.ErrStatusBadRequest)
	}

	seen := make(map[int64]struct{}, len(parts))
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			return nil, e.Wrap(p, e.ErrInvalidProductID)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

func parseProductForm(r *http.Request) (*ProductMetadata, error) {
	name := strings.TrimSpace(r.FormValue("name"))
	category := strings.TrimSpace(r.FormValue("category"))
	priceStr := r.FormValue("price")

	if name == "" || category == "" || strings.TrimSpace(priceStr) == "" {
		return nil, e.Wrap(fmt.Sprintf("name: %q, category: %q, price: %q", name, category, priceStr), e.ErrMissingFields)
	}

	priceCents, err := parsePriceToCents(priceStr)
	if err != nil {
		return nil, err
	}

	var stock int64
	if s := strings.TrimSpace(r.FormValue("stock")); s != "" {
		stock, err = strconv.ParseInt(s, 10, 64)
		if err != nil || stock < 0 {
			return nil, e.Wrap("stock", e.ErrInvalidQuantity)
		}
	}

	var tiers []TierDTO
	if raw := strings.TrimSpace(r.FormValue("discounts")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &tiers); err != nil {
			return nil, e.Wrap("discounts", e.ErrInvalidDiscountTier)
		}
	}

	return &ProductMetadata{
		Name:         name,
		CategoryName: category,
		Price:        priceCents,
		Stock:        stock,
		Tiers:        tiers,
	}, nil
}

func parseImages(files []*multipart.FileHeader) ([]usecase.ProductImage, error) {
	if len(files) == 0 {
		return nil, e.ErrNoImages
	}
	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.ProductImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(mimeType, "image/") {
			return nil, e.Wrap(fh.Filename, e.ErrUnsupportedMediaType)
		}
		images = append(images, *usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	if fh.Size > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "", e.Wrap(fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, "", e.Wrap(fh.Filename, err)
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
