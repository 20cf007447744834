package cart

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/validator.v8"
)

var validate = validator.New(&validator.Config{TagName: "validate"})

// Product is a cart line without quantity, as handed over by catalog views.
type Product struct {
	ID       string  `json:"id" validate:"required"`
	Title    string  `json:"title"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// Validate checks the product can become a cart line.
func (p Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(ErrInvalidProduct, err.Error())
	}

	if strings.TrimSpace(p.ID) == "" {
		return errors.Wrap(ErrInvalidProduct, "blank id")
	}

	if !finite(p.Price) {
		return errors.Wrap(ErrInvalidProduct, "price is not a finite number")
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Item is one product entry with its quantity.
type Item struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity.
func (item Item) Subtotal() float64 {
	return item.Price * float64(item.Quantity)
}

// Items is the ordered cart collection. Values are treated as immutable,
// every mutation below returns a fresh slice.
type Items []Item

// Find returns the position of id, or -1.
func (list Items) Find(id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone copies the collection. Never returns nil.
func (list Items) Clone() Items {
	out := make(Items, len(list))
	copy(out, list)
	return out
}

// Total sums every line subtotal.
func (list Items) Total() (total float64) {
	for _, item := range list {
		total += item.Subtotal()
	}
	return
}

// Count sums quantities.
func (list Items) Count() (n int) {
	for _, item := range list {
		n += item.Quantity
	}
	return
}

func (list Items) add(p Product) Items {
	next := list.Clone()
	if i := next.Find(p.ID); i >= 0 {
		next[i] = Item{Product: p, Quantity: next[i].Quantity + 1}
		return next
	}

	return append(next, Item{Product: p, Quantity: 1})
}

func (list Items) increment(id string) (Items, bool) {
	i := list.Find(id)
	if i < 0 {
		return list, false
	}

	next := list.Clone()
	next[i].Quantity++
	return next, true
}

func (list Items) decrement(id string) (Items, error) {
	i := list.Find(id)
	if i < 0 {
		return list, &NotFoundError{ID: id}
	}

	if list[i].Quantity > 1 {
		next := list.Clone()
		next[i].Quantity--
		return next, nil
	}

	next := make(Items, 0, len(list)-1)
	next = append(next, list[:i]...)
	return append(next, list[i+1:]...), nil
}

// sanitize drops lines that could not have been produced by the store and
// folds duplicated ids into their first occurrence.
func (list Items) sanitize() Items {
	out := make(Items, 0, len(list))
	for _, item := range list {
		if strings.TrimSpace(item.ID) == "" || item.Quantity < 1 || item.Price < 0 || !finite(item.Price) {
			log.Warningf("cart dropping invalid line id=%q quantity=%d price=%v", item.ID, item.Quantity, item.Price)
			continue
		}

		if i := out.Find(item.ID); i >= 0 {
			out[i].Quantity += item.Quantity
			continue
		}

		out = append(out, item)
	}
	return out
}

// Encode serializes the collection as a JSON array. An empty cart is "[]".
func Encode(list Items) ([]byte, error) {
	if list == nil {
		list = Items{}
	}

	data, err := json.Marshal(list)
	if err != nil {
		return nil, errors.Wrap(err, "encode cart")
	}
	return data, nil
}

// Decode parses a persisted collection.
func Decode(data []byte) (Items, error) {
	var list Items
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrap(err, "decode cart")
	}

	return list.sanitize(), nil
}
