package grpc

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var invalidArgument = []error{
	e.ErrInvalidQuantity,
	e.ErrInvalidProductID,
	e.ErrNoProducts,
	e.ErrEmptyQuote,
	e.ErrTooManyQuoteItems,
	e.ErrStatusBadRequest,
}

func GRPCErrorResponse(err error) error {
	if errors.Is(err, e.ErrProductNotFound) {
		return status.Error(codes.NotFound, e.ErrProductNotFound.Error())
	}
	if errors.Is(err, e.ErrConcurrentUpdate) {
		return status.Error(codes.Aborted, e.ErrConcurrentUpdate.Error())
	}
	for _, s := range invalidArgument {
		if errors.Is(err, s) {
			return status.Error(codes.InvalidArgument, s.Error())
		}
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}

// intField читает целое число из Struct. В Struct все числа float64,
// дробные и не влезающие в int64 значения отклоняются.
func intField(s *structpb.Struct, name string) (int64, bool, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, false, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, true, e.Wrap(fmt.Sprintf("%s: not a number", name), e.ErrStatusBadRequest)
	}
	return toInt64(name, n.NumberValue)
}

// quantityField: отсутствующее поле даёт def, нечисловое или отрицательное 0,
// дробное округляется вниз.
func quantityField(s *structpb.Struct, name string, def int64) int64 {
	v, ok := s.GetFields()[name]
	if !ok {
		return def
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0
	}

	f := n.NumberValue
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f = math.Floor(f); f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}

func toInt64(name string, f float64) (int64, bool, error) {
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, true, e.Wrap(fmt.Sprintf("%s: not an integer", name), e.ErrStatusBadRequest)
	}
	return int64(f), true, nil
}

func intList(s *structpb.Struct, name string) ([]int64, error) {
	list := s.GetFields()[name].GetListValue()
	if list == nil {
		return nil, nil
	}
	res := make([]int64, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, e.Wrap(name+": not a number", e.ErrStatusBadRequest)
		}
		id, _, err := toInt64(name, n.NumberValue)
		if err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, nil
}

// tiersValue пропускает правила без minQty или процента: в Struct нет null-полей у чисел.
func tiersValue(list []domain.DiscountTier) []any {
	tiers := make([]any, 0, len(list))
	for _, t := range list {
		if t.MinQty == nil || t.DiscountPercent == nil {
			continue
		}
		tiers = append(tiers, map[string]any{
			"min_qty":          *t.MinQty,
			"discount_percent": *t.DiscountPercent,
		})
	}
	return tiers
}

func productValue(p *usecase.ProductInfo) map[string]any {
	return map[string]any{
		"id":                 p.ID,
		"name":               p.Name,
		"category":           p.CategoryName,
		"price":              p.BasePrice().StringFixed(2),
		"price_cents":        p.Price,
		"stock":              p.Stock,
		"quantity_discounts": tiersValue(p.QuantityDiscounts),
	}
}

func pricingValue(p domain.PricingResult) map[string]any {
	return map[string]any{
		"tiers":            tiersValue(p.Tiers),
		"original_price":   p.OriginalPrice.String(),
		"unit_price":       p.UnitPrice.String(),
		"total_price":      p.TotalPrice.String(),
		"has_discount":     p.HasDiscount,
		"discount_percent": p.DiscountPercent.String(),
	}
}

func idsValue(ids []int64) []any {
	res := make([]any, 0, len(ids))
	for _, id := range ids {
		res = append(res, id)
	}
	return res
}
