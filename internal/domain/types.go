package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// --- Vocabulário do menu ---

type DrinkType string

const (
	DrinkHot     DrinkType = "HOT"
	DrinkCold    DrinkType = "COLD"
	DrinkBlended DrinkType = "BLENDED"
	DrinkMilkTea DrinkType = "MILK_TEA"
)

var DrinkTypes = []DrinkType{DrinkHot, DrinkCold, DrinkBlended, DrinkMilkTea}

type Size string

const (
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

var Sizes = []Size{SizeS, SizeM, SizeL, SizeXL}

// MilkType is optional on a Drink; NoMilk means the field is absent.
type MilkType string

const (
	NoMilk     MilkType = ""
	MilkWhole  MilkType = "WHOLE"
	MilkAlmond MilkType = "ALMOND"
)

var MilkTypes = []MilkType{MilkWhole, MilkAlmond}

type SandwichType string

const (
	SandwichPlain  SandwichType = "PLAIN"
	SandwichEgg    SandwichType = "EGG"
	SandwichTurkey SandwichType = "TURKEY"
)

var SandwichTypes = []SandwichType{SandwichPlain, SandwichEgg, SandwichTurkey}

type BagelType string

const (
	BagelPlain  BagelType = "PLAIN"
	BagelButter BagelType = "BUTTER"
	BagelCheese BagelType = "CHEESE"
)

var BagelTypes = []BagelType{BagelPlain, BagelButter, BagelCheese}

var (
	DefaultDrinkBasePrice     = decimal.NewFromInt(2)
	DefaultBreakfastBasePrice = decimal.NewFromInt(3)
)

// --- Itens do pedido ---

// OrderItem is the closed set of priceable items: Drink and Breakfast.
type OrderItem interface {
	fmt.Stringer
	isOrderItem()
	Kind() string
}

type Topping struct {
	WhipCream bool `json:"whip_cream"`
	Chocolate int  `json:"chocolate"`
}

func DefaultTopping() Topping {
	return Topping{WhipCream: true}
}

type Drink struct {
	DrinkType DrinkType       `json:"drink_type"`
	Size      Size            `json:"size"`
	Topping   Topping         `json:"topping"`
	MilkType  MilkType        `json:"milk_type,omitempty"`
	BasePrice decimal.Decimal `json:"base_price"`
}

func (Drink) isOrderItem() {}
func (Drink) Kind() string { return "drink" }

func (d Drink) HasMilk() bool {
	return d.MilkType != NoMilk
}

// CheckValues reports the first field holding a label outside its enumeration.
func (d Drink) CheckValues() error {
	if _, err := ParseDrinkType(string(d.DrinkType)); err != nil {
		return err
	}
	if _, err := ParseSize(string(d.Size)); err != nil {
		return err
	}
	if d.HasMilk() {
		if _, err := ParseMilkType(string(d.MilkType)); err != nil {
			return err
		}
	}
	return nil
}

func (d Drink) String() string {
	s := fmt.Sprintf("Drink(%s, %s, whip_cream=%t, chocolate=%d", d.DrinkType, d.Size, d.Topping.WhipCream, d.Topping.Chocolate)
	if d.HasMilk() {
		s += ", milk=" + string(d.MilkType)
	}
	return s + ")"
}

// UnmarshalJSON fills absent fields with the menu defaults before decoding.
func (d *Drink) UnmarshalJSON(data []byte) error {
	type alias Drink
	a := alias{Topping: DefaultTopping(), BasePrice: DefaultDrinkBasePrice}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = Drink(a)
	return nil
}

type DrinkOption func(*Drink)

func WithWhipCream(on bool) DrinkOption {
	return func(d *Drink) { d.Topping.WhipCream = on }
}

func WithChocolate(pumps int) DrinkOption {
	return func(d *Drink) { d.Topping.Chocolate = pumps }
}

func WithTopping(t Topping) DrinkOption {
	return func(d *Drink) { d.Topping = t }
}

func WithMilk(m MilkType) DrinkOption {
	return func(d *Drink) { d.MilkType = m }
}

func WithBasePrice(p decimal.Decimal) DrinkOption {
	return func(d *Drink) { d.BasePrice = p }
}

func NewDrink(t DrinkType, s Size, opts ...DrinkOption) Drink {
	d := Drink{
		DrinkType: t,
		Size:      s,
		Topping:   DefaultTopping(),
		BasePrice: DefaultDrinkBasePrice,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

type Breakfast struct {
	Sandwich  SandwichType    `json:"sandwiches"`
	Bagel     BagelType       `json:"bagels"`
	BasePrice decimal.Decimal `json:"base_price"`
}

func (Breakfast) isOrderItem() {}
func (Breakfast) Kind() string { return "breakfast" }

func (b Breakfast) CheckValues() error {
	if _, err := ParseSandwichType(string(b.Sandwich)); err != nil {
		return err
	}
	if _, err := ParseBagelType(string(b.Bagel)); err != nil {
		return err
	}
	return nil
}

func (b Breakfast) String() string {
	return fmt.Sprintf("Breakfast(%s, %s)", b.Sandwich, b.Bagel)
}

func (b *Breakfast) UnmarshalJSON(data []byte) error {
	type alias Breakfast
	a := alias{BasePrice: DefaultBreakfastBasePrice}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*b = Breakfast(a)
	return nil
}

func NewBreakfast(s SandwichType, b BagelType) Breakfast {
	return Breakfast{Sandwich: s, Bagel: b, BasePrice: DefaultBreakfastBasePrice}
}
