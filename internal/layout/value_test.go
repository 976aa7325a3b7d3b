package layout

import (
	"errors"
	"testing"
)

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value  Value
		isAuto bool
		unit   Unit
		amount float64
	}

	tests := map[string]tc{
		"Auto": {
			value:  Auto(),
			isAuto: true,
			unit:   UnitAuto,
			amount: 0,
		},
		"Pixels": {
			value:  Pixels(100),
			isAuto: false,
			unit:   UnitPixels,
			amount: 100,
		},
		"Percent": {
			value:  Percent(50),
			isAuto: false,
			unit:   UnitPercent,
			amount: 50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		container int
		fallback  int
		expected  int
	}

	tests := map[string]tc{
		"pixels ignore container": {
			value:     Pixels(50),
			container: 100,
			fallback:  999,
			expected:  50,
		},
		"pixels zero": {
			value:     Pixels(0),
			container: 100,
			fallback:  50,
			expected:  0,
		},
		"25 percent of 200": {
			value:     Percent(25),
			container: 200,
			expected:  50,
		},
		"percent of zero container": {
			value:     Percent(50),
			container: 0,
			fallback:  50,
			expected:  0,
		},
		"fractional percent rounds down": {
			value:     Percent(33.33),
			container: 100,
			expected:  33,
		},
		"auto returns fallback": {
			value:     Auto(),
			container: 100,
			fallback:  80,
			expected:  80,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.container, tt.fallback)
			if got != tt.expected {
				t.Errorf("Resolve(%d, %d) = %d, want %d",
					tt.container, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestParseWidth(t *testing.T) {
	type tc struct {
		input   string
		want    Value
		wantErr bool
	}

	tests := map[string]tc{
		"empty is auto":        {input: "", want: Auto()},
		"auto keyword":         {input: "AUTO", want: Auto()},
		"bare number":          {input: "120", want: Pixels(120)},
		"px suffix":            {input: "120px", want: Pixels(120)},
		"surrounding spaces":   {input: "  64px ", want: Pixels(64)},
		"fraction dropped":     {input: "12.7px", want: Pixels(12)},
		"percent":              {input: "25%", want: Percent(25)},
		"fractional percent":   {input: "12.5%", want: Percent(12.5)},
		"garbage":              {input: "wide", want: Auto(), wantErr: true},
		"negative pixels":      {input: "-5px", want: Auto(), wantErr: true},
		"negative percent":     {input: "-5%", want: Auto(), wantErr: true},
		"percent without body": {input: "%", want: Auto(), wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseWidth(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWidth) {
					t.Errorf("ParseWidth(%q) error = %v, want ErrInvalidWidth", tt.input, err)
				}
			} else if err != nil {
				t.Fatalf("ParseWidth(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseWidth(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValue_String_RoundTrip(t *testing.T) {
	for _, v := range []Value{Auto(), Pixels(80), Percent(12.5)} {
		got := ParseWidthOrAuto(v.String())
		if got != v {
			t.Errorf("ParseWidthOrAuto(%q) = %+v, want %+v", v.String(), got, v)
		}
	}
}
