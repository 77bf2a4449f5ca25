package domain

import "fmt"

func ParseDrinkType(s string) (DrinkType, error) {
	switch v := DrinkType(s); v {
	case DrinkHot, DrinkCold, DrinkBlended, DrinkMilkTea:
		return v, nil
	}
	return "", fmt.Errorf("%w: drink type %q", ErrUnknownValue, s)
}

func ParseSize(s string) (Size, error) {
	switch v := Size(s); v {
	case SizeS, SizeM, SizeL, SizeXL:
		return v, nil
	}
	return "", fmt.Errorf("%w: size %q", ErrUnknownValue, s)
}

// ParseMilkType accepts the empty string as "no milk".
func ParseMilkType(s string) (MilkType, error) {
	switch v := MilkType(s); v {
	case NoMilk, MilkWhole, MilkAlmond:
		return v, nil
	}
	return "", fmt.Errorf("%w: milk type %q", ErrUnknownValue, s)
}

func ParseSandwichType(s string) (SandwichType, error) {
	switch v := SandwichType(s); v {
	case SandwichPlain, SandwichEgg, SandwichTurkey:
		return v, nil
	}
	return "", fmt.Errorf("%w: sandwich type %q", ErrUnknownValue, s)
}

func ParseBagelType(s string) (BagelType, error) {
	switch v := BagelType(s); v {
	case BagelPlain, BagelButter, BagelCheese:
		return v, nil
	}
	return "", fmt.Errorf("%w: bagel type %q", ErrUnknownValue, s)
}

func (t *DrinkType) UnmarshalText(b []byte) (err error) {
	*t, err = ParseDrinkType(string(b))
	return err
}

func (s *Size) UnmarshalText(b []byte) (err error) {
	*s, err = ParseSize(string(b))
	return err
}

func (m *MilkType) UnmarshalText(b []byte) (err error) {
	*m, err = ParseMilkType(string(b))
	return err
}

func (t *SandwichType) UnmarshalText(b []byte) (err error) {
	*t, err = ParseSandwichType(string(b))
	return err
}

func (t *BagelType) UnmarshalText(b []byte) (err error) {
	*t, err = ParseBagelType(string(b))
	return err
}
