package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

type stubCatalog struct {
	products map[int64]usecase.ProductInfo
}

func (s *stubCatalog) RegisterNewProduct(context.Context, *usecase.AddNewProductReq) (*usecase.RegisterProductRes, error) {
	return nil, e.ErrInternalServerError
}

func (s *stubCatalog) SetQuantityDiscounts(context.Context, *usecase.SetDiscountsReq) (*usecase.OutboxEvent, error) {
	return nil, e.ErrInternalServerError
}

func (s *stubCatalog) GetProductsInfo(_ context.Context, req *usecase.GetProductsReq) (*usecase.GetProductsRes, error) {
	if len(req.IDs) == 0 {
		return nil, e.ErrNoProducts
	}
	res := usecase.NewGetProductsRes(nil, nil)
	for _, id := range req.IDs {
		if p, ok := s.products[id]; ok {
			res.Products = append(res.Products, p)
			continue
		}
		res.NotFoundProducts = append(res.NotFoundProducts, id)
	}
	return res, nil
}

func dialPricing(t *testing.T) *grpc.ClientConn {
	t.Helper()

	catalog := &stubCatalog{products: map[int64]usecase.ProductInfo{
		1: usecase.NewProductInfo(1, "Tea", "Drinks", 100000, 4, []domain.DiscountTier{
			domain.NewDiscountTier(5, 10),
			domain.NewDiscountTier(10, 20),
		}),
	}}

	log := logger.NewNop()
	srv := NewGRPCServer(&cfg.GRPCConfig{ShutdownTimeout: time.Second}, log)
	srv.RegisterServices(NewPricingService(catalog, usecase.NewQuoteUC(catalog), log))

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() { _ = srv.Stop(context.Background()) })

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func call(t *testing.T, conn *grpc.ClientConn, method string, in map[string]any) (map[string]any, error) {
	t.Helper()

	req, err := structpb.NewStruct(in)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out := new(structpb.Struct)
	if err := conn.Invoke(ctx, FullMethod(method), req, out); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}

func TestQuote(t *testing.T) {
	conn := dialPricing(t)

	res, err := call(t, conn, "Quote", map[string]any{"product_id": 1, "quantity": 7})
	require.NoError(t, err)

	pricing := res["pricing"].(map[string]any)
	assert.Equal(t, "900", pricing["unit_price"])
	assert.Equal(t, "6300", pricing["total_price"])
	assert.Equal(t, true, pricing["has_discount"])
	assert.Equal(t, "1000.00", res["product"].(map[string]any)["price"])
	tiers := pricing["tiers"].([]any)
	require.Len(t, tiers, 2)
	assert.Equal(t, float64(10), tiers[1].(map[string]any)["min_qty"])

	res, err = call(t, conn, "Quote", map[string]any{"product_id": 1})
	require.NoError(t, err)
	assert.Equal(t, float64(1), res["quantity"])
}

func TestQuote_DegenerateQuantity(t *testing.T) {
	conn := dialPricing(t)

	res, err := call(t, conn, "Quote", map[string]any{"product_id": 1, "quantity": 5.9})
	require.NoError(t, err)
	assert.Equal(t, float64(5), res["quantity"])
	assert.Equal(t, "4500", res["pricing"].(map[string]any)["total_price"])

	res, err = call(t, conn, "Quote", map[string]any{"product_id": 1, "quantity": "many"})
	require.NoError(t, err)
	assert.Equal(t, float64(0), res["quantity"])
	assert.Equal(t, "0", res["pricing"].(map[string]any)["total_price"])

	res, err = call(t, conn, "Quote", map[string]any{"product_id": 1, "quantity": -4})
	require.NoError(t, err)
	assert.Equal(t, float64(0), res["quantity"])
}

func TestQuote_Errors(t *testing.T) {
	conn := dialPricing(t)

	_, err := call(t, conn, "Quote", map[string]any{"product_id": 2})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = call(t, conn, "Quote", map[string]any{"product_id": 1.5})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = call(t, conn, "Quote", map[string]any{"product_id": "1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQuoteCart(t *testing.T) {
	conn := dialPricing(t)

	res, err := call(t, conn, "QuoteCart", map[string]any{"items": []any{
		map[string]any{"product_id": 1, "quantity": 12},
		map[string]any{"product_id": 3, "quantity": 1},
	}})
	require.NoError(t, err)

	assert.Equal(t, "9600", res["subtotal"])
	assert.Equal(t, float64(12), res["item_count"])
	assert.Equal(t, []any{float64(3)}, res["not_found"])
	assert.Len(t, res["lines"], 1)

	_, err = call(t, conn, "QuoteCart", map[string]any{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetProductsInfo(t *testing.T) {
	conn := dialPricing(t)

	res, err := call(t, conn, "GetProductsInfo", map[string]any{"ids": []any{1, 8}})
	require.NoError(t, err)

	products := res["products"].([]any)
	require.Len(t, products, 1)
	p := products[0].(map[string]any)
	assert.Equal(t, "Tea", p["name"])
	assert.Equal(t, float64(4), p["stock"])
	assert.Len(t, p["quantity_discounts"], 2)
	assert.Equal(t, []any{float64(8)}, res["not_found"])

	_, err = call(t, conn, "GetProductsInfo", map[string]any{"ids": []any{}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
