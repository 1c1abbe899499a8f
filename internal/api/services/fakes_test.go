package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/repository"
)

var errStoreDown = errors.New("connection refused")

type recordedEvent struct {
	Type string
	Data interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(eventType string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Type: eventType, Data: data})
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeCustomerStore struct {
	rows   map[int64]*domain.Customer
	nextID int64
	err    error
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{rows: map[int64]*domain.Customer{}}
}

func (f *fakeCustomerStore) Create(_ context.Context, customer *domain.Customer) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	now := time.Now()
	customer.ID = f.nextID
	customer.CreatedAt = now
	customer.UpdatedAt = now
	stored := *customer
	f.rows[customer.ID] = &stored
	return nil
}

func (f *fakeCustomerStore) FindAll(context.Context) ([]*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Customer{}
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.rows[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerStore) FindByID(_ context.Context, id int64) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.rows[id]
	if !ok {
		return nil, repository.NotFound(repository.ErrCustomerNotFound, "customer", id)
	}
	return c, nil
}

func (f *fakeCustomerStore) Exists(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeCustomerStore) Update(_ context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.rows[id]
	if !ok {
		return nil, repository.NotFound(repository.ErrCustomerNotFound, "customer", id)
	}
	if v, ok := patch.Name.Get(); ok {
		c.Name = v
	}
	if v, ok := patch.Phone.Get(); ok {
		c.Phone = v
	}
	if patch.Email.Set {
		c.Email = patch.Email.Value
	}
	if patch.Address.Set {
		c.Address = patch.Address.Value
	}
	if patch.Notes.Set {
		c.Notes = patch.Notes.Value
	}
	c.UpdatedAt = c.UpdatedAt.Add(time.Microsecond)
	return c, nil
}

func (f *fakeCustomerStore) Delete(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.rows[id]
	delete(f.rows, id)
	return ok, nil
}

type fakeAppointmentStore struct {
	rows   []*domain.Appointment
	nextID int64
	err    error
}

func (f *fakeAppointmentStore) Create(_ context.Context, appointment *domain.Appointment) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	appointment.ID = f.nextID
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = appointment.CreatedAt
	stored := *appointment
	f.rows = append(f.rows, &stored)
	return nil
}

func (f *fakeAppointmentStore) FindAll(context.Context) ([]*domain.Appointment, error) {
	out := []*domain.Appointment{}
	for i := len(f.rows) - 1; i >= 0; i-- {
		out = append(out, f.rows[i])
	}
	return out, f.err
}

func (f *fakeAppointmentStore) FindByCustomerID(_ context.Context, customerID int64) ([]*domain.Appointment, error) {
	out := []*domain.Appointment{}
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].CustomerID == customerID {
			out = append(out, f.rows[i])
		}
	}
	return out, f.err
}

func (f *fakeAppointmentStore) FindByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, a := range f.rows {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.NotFound(repository.ErrAppointmentNotFound, "appointment", id)
}

func (f *fakeAppointmentStore) Update(_ context.Context, id int64, patch domain.AppointmentPatch) (*domain.Appointment, error) {
	for _, a := range f.rows {
		if a.ID != id {
			continue
		}
		if v, ok := patch.Status.Get(); ok {
			a.Status = v
		}
		if v, ok := patch.ReminderSent.Get(); ok {
			a.ReminderSent = v
		}
		if patch.Notes.Set {
			a.Notes = patch.Notes.Value
		}
		a.UpdatedAt = a.UpdatedAt.Add(time.Microsecond)
		return a, nil
	}
	return nil, repository.NotFound(repository.ErrAppointmentNotFound, "appointment", id)
}

func (f *fakeAppointmentStore) Delete(_ context.Context, id int64) (bool, error) {
	for i, a := range f.rows {
		if a.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
