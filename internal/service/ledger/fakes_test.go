package ledger

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	logRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkinglog"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
)

// memStore - хранилище в памяти с теми же гарантиями, что и схема БД:
// уникальный номер слота, одно бронирование на слот, транзакции "всё или ничего".
type memStore struct {
	mu       sync.Mutex
	slots    map[int]domain.Slot
	bookings map[int]domain.Booking
	logs     []domain.LogEntry
	failOn   map[string]error

	readOnlyTx int
}

type inTxKey struct{}

func newMemStore(capacity int) *memStore {
	st := &memStore{
		slots:    make(map[int]domain.Slot),
		bookings: make(map[int]domain.Booking),
		failOn:   make(map[string]error),
	}
	for n := 1; n <= capacity; n++ {
		st.slots[n] = *domain.NewEmptySlot(n)
	}
	return st
}

func (st *memStore) lock(ctx context.Context) func() {
	if ctx.Value(inTxKey{}) != nil {
		return func() {}
	}
	st.mu.Lock()
	return st.mu.Unlock
}

func (st *memStore) fail(op string) error {
	return st.failOn[op]
}

type snapshot struct {
	slots    map[int]domain.Slot
	bookings map[int]domain.Booking
	logs     []domain.LogEntry
}

func (st *memStore) snapshot() snapshot {
	s := snapshot{
		slots:    make(map[int]domain.Slot, len(st.slots)),
		bookings: make(map[int]domain.Booking, len(st.bookings)),
		logs:     append([]domain.LogEntry(nil), st.logs...),
	}
	for k, v := range st.slots {
		s.slots[k] = v
	}
	for k, v := range st.bookings {
		s.bookings[k] = v
	}
	return s
}

func (st *memStore) restore(s snapshot) {
	st.slots = s.slots
	st.bookings = s.bookings
	st.logs = s.logs
}

// fakeTxManager сериализует транзакции и откатывает изменения при ошибке
type fakeTxManager struct {
	st *memStore
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx)
	}

	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	before := m.st.snapshot()
	if err := fn(context.WithValue(ctx, inTxKey{}, true)); err != nil {
		m.st.restore(before)
		return err
	}
	return nil
}

func (m *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx)
	}

	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	m.st.readOnlyTx++
	return fn(context.WithValue(ctx, inTxKey{}, true))
}

type fakeSlotRepo struct{ st *memStore }

func (r *fakeSlotRepo) GetByNumber(ctx context.Context, number int) (*domain.Slot, error) {
	defer r.st.lock(ctx)()
	if err := r.st.fail("slot.GetByNumber"); err != nil {
		return nil, err
	}
	slot, ok := r.st.slots[number]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return &slot, nil
}

func (r *fakeSlotRepo) List(ctx context.Context) ([]*domain.Slot, error) {
	defer r.st.lock(ctx)()
	if err := r.st.fail("slot.List"); err != nil {
		return nil, err
	}
	result := make([]*domain.Slot, 0, len(r.st.slots))
	for _, s := range r.st.slots {
		s := s
		result = append(result, &s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

func (r *fakeSlotRepo) UpdateState(ctx context.Context, slot *domain.Slot) error {
	defer r.st.lock(ctx)()
	if err := r.st.fail("slot.UpdateState"); err != nil {
		return err
	}
	if _, ok := r.st.slots[slot.Number]; !ok {
		return slotRepo.ErrSlotNotFound
	}
	r.st.slots[slot.Number] = *slot
	return nil
}

func (r *fakeSlotRepo) Count(ctx context.Context) (int, error) {
	defer r.st.lock(ctx)()
	return len(r.st.slots), nil
}

func (r *fakeSlotRepo) Seed(ctx context.Context, count int) error {
	defer r.st.lock(ctx)()
	for n := 1; n <= count; n++ {
		if _, ok := r.st.slots[n]; !ok {
			r.st.slots[n] = *domain.NewEmptySlot(n)
		}
	}
	return nil
}

type fakeBookingRepo struct{ st *memStore }

func (r *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	defer r.st.lock(ctx)()
	if err := r.st.fail("booking.Create"); err != nil {
		return err
	}
	if _, exists := r.st.bookings[b.SlotNumber]; exists {
		return bookingRepo.ErrSlotAlreadyBooked
	}
	r.st.bookings[b.SlotNumber] = *b
	return nil
}

func (r *fakeBookingRepo) GetBySlot(ctx context.Context, slotNumber int) (*domain.Booking, error) {
	defer r.st.lock(ctx)()
	b, ok := r.st.bookings[slotNumber]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, slotNumber int, status domain.BookingStatus) error {
	defer r.st.lock(ctx)()
	b, ok := r.st.bookings[slotNumber]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	r.st.bookings[slotNumber] = b
	return nil
}

func (r *fakeBookingRepo) DeleteBySlot(ctx context.Context, slotNumber int) error {
	defer r.st.lock(ctx)()
	if _, ok := r.st.bookings[slotNumber]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.st.bookings, slotNumber)
	return nil
}

type fakeLogRepo struct{ st *memStore }

func (r *fakeLogRepo) Create(ctx context.Context, e *domain.LogEntry) error {
	defer r.st.lock(ctx)()
	if err := r.st.fail("log.Create"); err != nil {
		return err
	}
	r.st.logs = append(r.st.logs, *e)
	return nil
}

func (r *fakeLogRepo) FinalizeActive(
	ctx context.Context,
	slotNumber int,
	startTime, endTime time.Time,
	amount float64,
	status domain.LogStatus,
) error {
	defer r.st.lock(ctx)()
	for i := range r.st.logs {
		e := &r.st.logs[i]
		if e.SlotNumber == slotNumber && e.StartTime.Equal(startTime) && e.Status == domain.LogActive {
			end, a := endTime, amount
			e.EndTime = &end
			e.Amount = &a
			e.Status = status
			return nil
		}
	}
	return logRepo.ErrActiveEntryNotFound
}

func (r *fakeLogRepo) List(ctx context.Context) ([]*domain.LogEntry, error) {
	defer r.st.lock(ctx)()
	result := make([]*domain.LogEntry, 0, len(r.st.logs))
	for _, e := range r.st.logs {
		e := e
		result = append(result, &e)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].StartTime.After(result[j].StartTime) })
	return result, nil
}

// fakeClock управляемые часы
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type countingRecorder struct {
	mu       sync.Mutex
	bookings int
	invoices int
	revenue  float64
	resets   int
}

func (r *countingRecorder) BookingCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings++
}

func (r *countingRecorder) InvoiceIssued(amount float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices++
	r.revenue += amount
}

func (r *countingRecorder) SlotReset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets++
}
