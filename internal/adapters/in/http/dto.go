package http

import (
	"time"

	"aims/internal/core/application/usecases/queries"
	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code        int               `json:"code"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Shortages   []Shortage        `json:"shortages,omitempty"`
}

type Shortage struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

type NewProduct struct {
	Category        string  `json:"category"`
	Title           string  `json:"title"`
	Price           int64   `json:"price"`
	Value           int64   `json:"value"`
	Weight          float64 `json:"weight"`
	Quantity        int     `json:"quantity"`
	DiscountPercent int     `json:"discountPercent"`
}

type Product struct {
	ID              string  `json:"id"`
	Category        string  `json:"category"`
	Title           string  `json:"title"`
	Price           int64   `json:"price"`
	SalePrice       int64   `json:"salePrice"`
	DiscountPercent int     `json:"discountPercent"`
	Weight          float64 `json:"weight"`
	Quantity        int     `json:"quantity"`
}

type Item struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type DeliveryInfo struct {
	RecipientName            string     `json:"recipientName"`
	Email                    string     `json:"email"`
	Phone                    string     `json:"phone"`
	Province                 string     `json:"province"`
	Address                  string     `json:"address"`
	IsRushDelivery           bool       `json:"isRushDelivery"`
	RushDeliveryTime         *time.Time `json:"rushDeliveryTime,omitempty"`
	RushDeliveryInstructions string     `json:"rushDeliveryInstructions,omitempty"`
}

type QuoteRequest struct {
	Items        []Item       `json:"items"`
	DeliveryInfo DeliveryInfo `json:"deliveryInfo"`
}

type PlaceOrderRequest struct {
	Items         []Item       `json:"items"`
	DeliveryInfo  DeliveryInfo `json:"deliveryInfo"`
	PaymentMethod string       `json:"paymentMethod"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type CancelRequest struct {
	Reason   string `json:"reason"`
	Comments string `json:"comments"`
}

type Line struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Weight    float64 `json:"weight"`
	Quantity  int     `json:"quantity"`
	UnitPrice int64   `json:"unitPrice"`
	Amount    int64   `json:"amount"`
}

type Fees struct {
	Subtotal        int64 `json:"subtotal"`
	VAT             int64 `json:"vat"`
	DeliveryFee     int64 `json:"deliveryFee"`
	RushDeliveryFee int64 `json:"rushDeliveryFee"`
	Total           int64 `json:"total"`
}

type StockWarning struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

type Quote struct {
	Lines              []Line            `json:"lines"`
	Fees               Fees              `json:"fees"`
	Province           string            `json:"province,omitempty"`
	CanUseRushDelivery bool              `json:"canUseRushDelivery"`
	FieldErrors        map[string]string `json:"fieldErrors,omitempty"`
	StockWarnings      []StockWarning    `json:"stockWarnings,omitempty"`
}

type Payment struct {
	Method              string    `json:"method"`
	TransactionID       string    `json:"transactionId"`
	TransactionDatetime time.Time `json:"transactionDatetime"`
}

type Order struct {
	ID           string       `json:"id"`
	Status       string       `json:"status"`
	Lines        []Line       `json:"lines"`
	DeliveryInfo DeliveryInfo `json:"deliveryInfo"`
	Fees         Fees         `json:"fees"`
	Payment      Payment      `json:"payment"`
	Reason       string       `json:"reason,omitempty"`
	Comments     string       `json:"comments,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type OrderSummary struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	RecipientName  string    `json:"recipientName"`
	Email          string    `json:"email"`
	Province       string    `json:"province"`
	IsRushDelivery bool      `json:"isRushDelivery"`
	TotalAmount    int64     `json:"totalAmount"`
	PaymentMethod  string    `json:"paymentMethod"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (d DeliveryInfo) toDomain() delivery.Info {
	info := delivery.Info{
		RecipientName:            d.RecipientName,
		Email:                    d.Email,
		Phone:                    d.Phone,
		Province:                 d.Province,
		Address:                  d.Address,
		IsRushDelivery:           d.IsRushDelivery,
		RushDeliveryInstructions: d.RushDeliveryInstructions,
	}
	if d.RushDeliveryTime != nil {
		info.RushDeliveryTime = *d.RushDeliveryTime
	}
	return info
}

func deliveryInfoOf(info delivery.Info) DeliveryInfo {
	d := DeliveryInfo{
		RecipientName:            info.RecipientName,
		Email:                    info.Email,
		Phone:                    info.Phone,
		Province:                 info.Province,
		Address:                  info.Address,
		IsRushDelivery:           info.IsRushDelivery,
		RushDeliveryInstructions: info.RushDeliveryInstructions,
	}
	if info.HasRushDeliveryTime() {
		t := info.RushDeliveryTime
		d.RushDeliveryTime = &t
	}
	return d
}

func itemsToDomain(items []Item) ([]cart.Item, error) {
	out := make([]cart.Item, 0, len(items))
	for _, it := range items {
		id, err := kernel.UUIDFromString(it.ProductID)
		if err != nil {
			return nil, err
		}
		out = append(out, cart.Item{ProductID: id, Quantity: it.Quantity})
	}
	return out, nil
}

func feesOf(f queries.FeeView) Fees {
	return Fees{
		Subtotal:        f.Subtotal.Int64(),
		VAT:             f.VAT.Int64(),
		DeliveryFee:     f.DeliveryFee.Int64(),
		RushDeliveryFee: f.RushDeliveryFee.Int64(),
		Total:           f.Total.Int64(),
	}
}

func breakdownOf(f order.FeeBreakdown) Fees {
	return Fees{
		Subtotal:        f.Subtotal.Int64(),
		VAT:             f.VAT.Int64(),
		DeliveryFee:     f.DeliveryFee.Int64(),
		RushDeliveryFee: f.RushDeliveryFee.Int64(),
		Total:           f.Total().Int64(),
	}
}

func lineOf(l cart.Line) Line {
	return Line{
		ProductID: l.ProductID().String(),
		Title:     l.Title(),
		Category:  l.Category().String(),
		Weight:    l.Weight().Float64(),
		Quantity:  l.Quantity(),
		UnitPrice: l.UnitPrice().Int64(),
		Amount:    l.Amount().Int64(),
	}
}

func paymentOf(p order.Payment) Payment {
	return Payment{
		Method:              string(p.Method),
		TransactionID:       p.TransactionID,
		TransactionDatetime: p.TransactionDatetime,
	}
}

func productOf(p *queries.GetProductQueryResponse) Product {
	return Product{
		ID:              p.ID.String(),
		Category:        p.Category.String(),
		Title:           p.Title,
		Price:           p.Price.Int64(),
		SalePrice:       p.SalePrice.Int64(),
		DiscountPercent: p.DiscountPercent,
		Weight:          p.Weight.Float64(),
		Quantity:        p.Quantity,
	}
}

func quoteOf(q queries.QuoteCheckoutQueryResponse) Quote {
	out := Quote{
		Lines:              make([]Line, 0, len(q.Lines)),
		Fees:               feesOf(q.Fees),
		CanUseRushDelivery: q.CanUseRushDelivery,
		FieldErrors:        fieldErrorsOf(q.FieldErrors),
	}
	if !q.Province.IsZero() {
		out.Province = q.Province.Name()
	}
	for _, l := range q.Lines {
		out.Lines = append(out.Lines, lineOf(l))
	}
	for _, w := range q.StockWarnings {
		out.StockWarnings = append(out.StockWarnings, StockWarning{
			ProductID: w.ProductID.String(),
			Title:     w.Title,
			Requested: w.Requested,
			Available: w.Available,
		})
	}
	return out
}

func orderOf(o *order.Order) Order {
	lines := o.Lines()
	out := Order{
		ID:           o.ID().String(),
		Status:       o.Status().String(),
		Lines:        make([]Line, 0, len(lines)),
		DeliveryInfo: deliveryInfoOf(o.DeliveryInfo()),
		Fees:         breakdownOf(o.Fees()),
		Payment:      paymentOf(o.Payment()),
		Reason:       o.Reason(),
		Comments:     o.Comments(),
		CreatedAt:    o.CreatedAt(),
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, lineOf(l))
	}
	return out
}

func orderViewOf(v *queries.GetOrderQueryResponse) Order {
	out := Order{
		ID:           v.ID.String(),
		Status:       v.Status.String(),
		Lines:        make([]Line, 0, len(v.Lines)),
		DeliveryInfo: deliveryInfoOf(v.Delivery),
		Fees:         feesOf(v.Fees),
		Payment:      paymentOf(v.Payment),
		Reason:       v.Reason,
		Comments:     v.Comments,
		CreatedAt:    v.CreatedAt,
	}
	for _, l := range v.Lines {
		out.Lines = append(out.Lines, Line{
			ProductID: l.ProductID.String(),
			Title:     l.Title,
			Category:  l.Category.String(),
			Weight:    l.Weight.Float64(),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.Int64(),
			Amount:    l.Amount.Int64(),
		})
	}
	return out
}

func orderSummaryOf(r queries.ListOrdersQueryResponse) OrderSummary {
	return OrderSummary{
		ID:             r.ID.String(),
		Status:         r.Status.String(),
		RecipientName:  r.RecipientName,
		Email:          r.Email,
		Province:       r.Province,
		IsRushDelivery: r.IsRushDelivery,
		TotalAmount:    r.TotalAmount.Int64(),
		PaymentMethod:  string(r.PaymentMethod),
		CreatedAt:      r.CreatedAt,
	}
}

func fieldErrorsOf(fe delivery.FieldErrors) map[string]string {
	if fe.IsEmpty() {
		return nil
	}
	out := make(map[string]string, len(fe))
	for f, msg := range fe {
		out[string(f)] = msg
	}
	return out
}
