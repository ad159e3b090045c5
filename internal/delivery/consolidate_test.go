package delivery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/consign/internal/delivery"
	"github.com/dukerupert/consign/internal/domain"
)

func TestBuckets_KeysOrder(t *testing.T) {
	b := delivery.Buckets{}
	b.Add(bucket(domain.GroupNoStock, ""), item("Z", 1))
	b.Add(bucket(domain.GroupInventoryWait, "WH1"), item("B", 1))
	b.Add(bucket(domain.GroupStandard, "WH2"), item("C", 1))
	b.Add(bucket(domain.GroupStandard, "WH1"), item("A", 1), item("A2", 1))

	assert.Equal(t, []domain.DeliveryBucket{
		bucket(domain.GroupStandard, "WH1"),
		bucket(domain.GroupStandard, "WH2"),
		bucket(domain.GroupInventoryWait, "WH1"),
		bucket(domain.GroupNoStock, ""),
	}, b.Keys())
	assert.Equal(t, 5, b.Count())
}

func TestBuckets_PhysicalCountBySupplier(t *testing.T) {
	b := delivery.Buckets{}
	b.Add(bucket(domain.GroupStandard, "WH1"), item("A", 1))
	b.Add(bucket(domain.GroupDateWait, "WH1"), item("B", 1))
	b.Add(bucket(domain.GroupElectronic, "WH1"), item("C", 1))
	b.Add(bucket(domain.GroupOffline, "WH2"), item("D", 1))
	b.Add(bucket(domain.GroupNoStock, ""), item("E", 1))

	assert.Equal(t, map[string]int{"WH1": 2, "WH2": 0, "": 0}, b.PhysicalCountBySupplier())
}

func TestConsolidate(t *testing.T) {
	raw := func() delivery.Buckets {
		b := delivery.Buckets{}
		b.Add(bucket(domain.GroupStandard, "S"), item("A", 1), item("B", 1))
		b.Add(bucket(domain.GroupInventoryWait, "S"), item("C", 1))
		b.Add(bucket(domain.GroupElectronic, "S"), item("EBOOK", 1))
		b.Add(bucket(domain.GroupNoStock, "S"), item("GONE", 1))
		b.Add(bucket(domain.GroupOffline, "S"), item("SHOWROOM", 1))
		b.Add(bucket(domain.GroupStandard, "T"), item("D", 1))
		b.Add(bucket(domain.GroupDateWait, "T"), item("E", 1))
		return b
	}

	t.Run("forced supplier is folded into one mixed delivery", func(t *testing.T) {
		input := raw()
		got := delivery.Consolidate(input, map[string]bool{"S": true, "T": false})

		assert.Equal(t, []domain.DeliveryBucket{
			bucket(domain.GroupStandard, "T"),
			bucket(domain.GroupDateWait, "T"),
			bucket(domain.GroupElectronic, "S"),
			bucket(domain.GroupMix, "S"),
			bucket(domain.GroupOffline, "S"),
			bucket(domain.GroupNoStock, "S"),
		}, got.Keys())
		assert.Equal(t, []string{"A", "B", "C"}, skus(got[bucket(domain.GroupMix, "S")]))
		assert.Equal(t, input.Count(), got.Count(), "no item is lost or duplicated")
		assert.Equal(t, 1, got.PhysicalCountBySupplier()["S"])

		assert.Len(t, input, 7, "input is left untouched")
	})

	t.Run("exempt groups are never merged", func(t *testing.T) {
		got := delivery.Consolidate(raw(), map[string]bool{"S": true})
		assert.Equal(t, []string{"EBOOK"}, skus(got[bucket(domain.GroupElectronic, "S")]))
		assert.Equal(t, []string{"GONE"}, skus(got[bucket(domain.GroupNoStock, "S")]))
		assert.Equal(t, []string{"SHOWROOM"}, skus(got[bucket(domain.GroupOffline, "S")]))
	})

	t.Run("missing supplier entry is not forced", func(t *testing.T) {
		input := raw()
		got := delivery.Consolidate(input, map[string]bool{})
		assert.Equal(t, input, got)

		got = delivery.Consolidate(input, nil)
		assert.Equal(t, input, got)
	})

	t.Run("single physical bucket is left alone", func(t *testing.T) {
		b := delivery.Buckets{}
		b.Add(bucket(domain.GroupInventoryWait, "S"), item("C", 1))
		b.Add(bucket(domain.GroupElectronic, "S"), item("EBOOK", 1))
		b.Add(bucket(domain.GroupNoStock, "S"), item("GONE", 1))

		got := delivery.Consolidate(b, map[string]bool{"S": true})
		assert.Equal(t, b, got)
	})

	t.Run("existing mixed delivery absorbs new buckets", func(t *testing.T) {
		b := delivery.Buckets{}
		b.Add(bucket(domain.GroupMix, "S"), item("A", 1), item("C", 1))
		b.Add(bucket(domain.GroupStandard, "S"), item("B", 1))

		got := delivery.Consolidate(b, map[string]bool{"S": true})
		require.Equal(t, []domain.DeliveryBucket{bucket(domain.GroupMix, "S")}, got.Keys())
		assert.Equal(t, []string{"B", "A", "C"}, skus(got[bucket(domain.GroupMix, "S")]))
	})
}
