package element

import (
	"math"
	"math/big"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Element
		expected int
	}{
		// Variant ranking: Null < Scalar < Array < Object
		{"Null < Scalar", Null{}, FromBool(false), -1},
		{"Scalar < Array", FromString("z"), NewArray(), -1},
		{"Array < Object", NewArray(), NewObject(), -1},
		{"nil < Null", nil, Null{}, -1},
		{"Null == Null", Null{}, Null{}, 0},

		// Scalar families: bool < number < string
		{"Bool < Number", FromBool(true), FromInt(0), -1},
		{"Number < String", FromInt(99), FromString("0"), -1},

		// Bool comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number comparison
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.5), FromFloat(2.5), -1},
		{"Int < Float cross", FromInt(1), FromFloat(1.5), -1},
		{"Int before Float on tie", FromInt(1), FromFloat(1), -1},
		{"NaN first", FromFloat(math.NaN()), FromFloat(math.Inf(-1)), -1},
		{"NaN == NaN", FromFloat(math.NaN()), FromFloat(math.NaN()), 0},
		{"Int < BigInt", FromInt(math.MaxInt64), FromBigInt(new(big.Int).Lsh(big.NewInt(1), 70)), -1},
		{"Negative BigInt < Int",
			FromBigInt(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 70))),
			FromInt(math.MinInt64),
			-1},

		// String comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		// Array comparison
		{"Empty Array == Empty Array", NewArray(), NewArray(), 0},
		{"Short Array < Long Array", NewArray(FromInt(1)), NewArray(FromInt(1), FromInt(2)), -1},
		{"Array Element Comparison", NewArray(FromInt(1)), NewArray(FromInt(2)), -1},

		// Object comparison
		{"Empty Object == Empty Object", NewObject(), NewObject(), 0},
		{"Short Object < Long Object", objOf("a", FromInt(1)), objOf("a", FromInt(1), "b", FromInt(2)), -1},
		{"Object Key Comparison", objOf("a", FromInt(1)), objOf("b", FromInt(1)), -1},
		{"Object Value Comparison", objOf("a", FromInt(1)), objOf("a", FromInt(2)), -1},
		{"Object Order Ignored",
			objOf("a", FromInt(1), "b", FromInt(2)),
			objOf("b", FromInt(2), "a", FromInt(1)),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			// Agreement with Equal
			if tt.a != nil && tt.b != nil {
				if equal := tt.a.Equal(tt.b); equal != (tt.expected == 0) {
					t.Errorf("Equal() = %v, Compare() = %v", equal, tt.expected)
				}
			}
		})
	}
}
