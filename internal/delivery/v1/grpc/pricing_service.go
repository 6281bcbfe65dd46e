package grpc

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const pricingServiceName = "storefront.v1.PricingService"

// PricingServiceServer: gRPC-сервис расчёта цен для внутренних потребителей
// (оформление заказа, рекомендации). Сообщения в google.protobuf.Struct.
type PricingServiceServer interface {
	Quote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	QuoteCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetProductsInfo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// PricingServiceDesc описывает сервис без сгенерированного кода: все методы унарные.
var PricingServiceDesc = grpc.ServiceDesc{
	ServiceName: pricingServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Quote", Handler: unaryHandler("Quote", PricingServiceServer.Quote)},
		{MethodName: "QuoteCart", Handler: unaryHandler("QuoteCart", PricingServiceServer.QuoteCart)},
		{MethodName: "GetProductsInfo", Handler: unaryHandler("GetProductsInfo", PricingServiceServer.GetProductsInfo)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/pricing.proto",
}

// FullMethod возвращает полное имя метода для клиента ("/storefront.v1.PricingService/Quote").
func FullMethod(method string) string {
	return "/" + pricingServiceName + "/" + method
}

type method func(srv PricingServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call method) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PricingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PricingServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type PricingService struct {
	prUC    usecase.ProductUC
	quoteUC usecase.QuoteUC
	logger  logger.Logger
}

func NewPricingService(prUC usecase.ProductUC, quoteUC usecase.QuoteUC, logger logger.Logger) *PricingService {
	return &PricingService{prUC: prUC, quoteUC: quoteUC, logger: logger}
}

// Quote: {product_id, quantity?} -> {product, quantity, pricing}. quantity по умолчанию 1,
// некорректное количество считается так же, как в HTTP.
func (g *PricingService) Quote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.Quote"

	productID, _, err := intField(req, "product_id")
	if err != nil {
		return nil, GRPCErrorResponse(err)
	}
	quantity := quantityField(req, "quantity", 1)

	res, err := g.quoteUC.QuoteProduct(ctx, usecase.NewQuoteProductReq(productID, quantity))
	if err != nil {
		g.logger.Debugf("%s: %v", op, err)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return g.toStruct(op, map[string]any{
		"product":  productValue(&res.Product),
		"quantity": quantity,
		"pricing":  pricingValue(res.Pricing),
	})
}

// QuoteCart: {items: [{product_id, quantity}]} -> {lines, subtotal, item_count, not_found}.
func (g *PricingService) QuoteCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.QuoteCart"

	raw := req.GetFields()["items"].GetListValue().GetValues()
	items := make([]usecase.QuoteItem, 0, len(raw))
	for _, v := range raw {
		item := v.GetStructValue()
		if item == nil {
			return nil, GRPCErrorResponse(e.Wrap("items: not an object", e.ErrStatusBadRequest))
		}
		productID, _, err := intField(item, "product_id")
		if err != nil {
			return nil, GRPCErrorResponse(err)
		}
		items = append(items, usecase.QuoteItem{ProductID: productID, Quantity: quantityField(item, "quantity", 0)})
	}

	res, err := g.quoteUC.QuoteCart(ctx, usecase.NewQuoteCartReq(items))
	if err != nil {
		g.logger.Debugf("%s: %v", op, err)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	lines := make([]any, 0, len(res.Lines))
	for i := range res.Lines {
		lines = append(lines, map[string]any{
			"product":  productValue(&res.Lines[i].Product),
			"quantity": res.Lines[i].Quantity,
			"pricing":  pricingValue(res.Lines[i].Pricing),
		})
	}

	return g.toStruct(op, map[string]any{
		"lines":      lines,
		"subtotal":   res.Subtotal.String(),
		"item_count": res.ItemCount,
		"not_found":  idsValue(res.NotFoundProducts),
	})
}

// GetProductsInfo: {ids: [...]} -> {products, not_found}.
func (g *PricingService) GetProductsInfo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetProductsInfo"

	ids, err := intList(req, "ids")
	if err != nil {
		return nil, GRPCErrorResponse(err)
	}

	res, err := g.prUC.GetProductsInfo(ctx, usecase.NewGetProductsReq(ids))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	products := make([]any, 0, len(res.Products))
	for i := range res.Products {
		products = append(products, productValue(&res.Products[i]))
	}

	return g.toStruct(op, map[string]any{
		"products":  products,
		"not_found": idsValue(res.NotFoundProducts),
	})
}

func (g *PricingService) toStruct(op string, m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s: encode response", op)
		return nil, GRPCErrorResponse(err)
	}
	return s, nil
}
