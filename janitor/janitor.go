// Package janitor removes carts that have been idle longer than the
// configured threshold. It is a guarded lazy-cron: callers may invoke it
// as often as they like, a TTL flag makes the actual table scan run at
// most once per interval.
package janitor

import (
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/models"
)

type Sweeper struct {
	db *gorm.DB

	mu      sync.Mutex
	lastRun time.Time

	staleAfter time.Duration
	interval   time.Duration
}

func New(db *gorm.DB, staleAfter, interval time.Duration) *Sweeper {
	return &Sweeper{db: db, staleAfter: staleAfter, interval: interval}
}

// MaybeSweep runs the sweep unless one already ran within the interval.
// Best-effort single-flight: concurrent callers race on the flag, at
// most one of them wins.
func (s *Sweeper) MaybeSweep() {
	s.mu.Lock()
	if time.Since(s.lastRun) < s.interval {
		s.mu.Unlock()
		return
	}
	s.lastRun = time.Now()
	s.mu.Unlock()

	if err := s.Sweep(); err != nil {
		log.Printf("janitor: cart sweep failed: %v", err)
	}
}

// Sweep deletes every cart whose updated_at is older than the threshold,
// together with its items.
func (s *Sweeper) Sweep() error {
	cutoff := time.Now().Add(-s.staleAfter)

	var ids []uint
	if err := s.db.Model(&models.Cart{}).Where("updated_at < ?", cutoff).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.db.Where("cart_id IN ?", ids).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	if err := s.db.Where("id IN ?", ids).Delete(&models.Cart{}).Error; err != nil {
		return err
	}
	log.Printf("janitor: removed %d stale carts", len(ids))
	return nil
}

// Run sweeps on a fixed ticker until the stop channel closes. main wires
// this up alongside the request-triggered MaybeSweep path.
func (s *Sweeper) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.MaybeSweep()
		case <-stop:
			return
		}
	}
}
