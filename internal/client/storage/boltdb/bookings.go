package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

var keyBookingIDs = []byte("my_ids")

// AppendBookingID appends id to the local booking-id list. The
// read-modify-write runs inside a single update transaction, so
// concurrent appends cannot lose ids.
func (s *Storage) AppendBookingID(ctx context.Context, id int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBookings)
		if bucket == nil {
			return fmt.Errorf("bookings bucket not found")
		}

		var ids []int64
		if data := bucket.Get(keyBookingIDs); data != nil {
			if err := json.Unmarshal(data, &ids); err != nil {
				return fmt.Errorf("failed to unmarshal booking ids: %w", err)
			}
		}

		ids = append(ids, id)

		data, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("failed to marshal booking ids: %w", err)
		}
		if err := bucket.Put(keyBookingIDs, data); err != nil {
			return fmt.Errorf("failed to save booking ids: %w", err)
		}

		return nil
	})
}

// BookingIDs returns all recorded booking ids in insertion order.
func (s *Storage) BookingIDs(ctx context.Context) ([]int64, error) {
	ids := []int64{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBookings)
		if bucket == nil {
			return fmt.Errorf("bookings bucket not found")
		}

		data := bucket.Get(keyBookingIDs)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("failed to unmarshal booking ids: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return ids, nil
}
