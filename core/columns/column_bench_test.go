package columns

import (
	"fmt"
	"testing"
)

const benchSize = 1_000_000

func BenchmarkStringColumn_Append_1M(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		col := NewStringColumn(NewColumnDef("test", "Test"))
		for j := 0; j < benchSize; j++ {
			col.Append(fmt.Sprintf("value_%d", j%100))
		}
	}
}

func BenchmarkStringColumn_GetString_1M(b *testing.B) {
	col := NewStringColumn(NewColumnDef("test", "Test"))
	for j := 0; j < benchSize; j++ {
		col.Append(fmt.Sprintf("value_%d", j%100))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := uint32(0); j < benchSize; j++ {
			col.GetString(j)
		}
	}
}

func BenchmarkFloat64Column_Append_1M(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		col := NewFloat64Column(NewColumnDef("test", "Test"))
		for j := 0; j < benchSize; j++ {
			col.Append(float64(j) * 1.5)
		}
	}
}

func BenchmarkFloat64Column_GetFloat_1M(b *testing.B) {
	col := NewFloat64Column(NewColumnDef("test", "Test"))
	for j := 0; j < benchSize; j++ {
		col.Append(float64(j) * 1.5)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := uint32(0); j < benchSize; j++ {
			col.GetFloat(j)
		}
	}
}
