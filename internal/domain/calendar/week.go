package calendar

// Week buckets items by calendar day. Day order is the order of the date list given at
// construction; it is never re-sorted.
type Week[T any] struct {
	dates  []DateTime
	byDate map[string][]T
}

// NewWeek builds a week from an ordered list of days and their items. Repeated days keep
// their first position; days missing from byDate get an empty bucket.
func NewWeek[T any](dates []DateTime, byDate map[string][]T) Week[T] {
	w := Week[T]{
		dates:  make([]DateTime, 0, len(dates)),
		byDate: make(map[string][]T, len(dates)),
	}
	for _, d := range dates {
		key := d.ToDateString()
		if _, seen := w.byDate[key]; seen {
			continue
		}
		items := byDate[key]
		bucket := make([]T, len(items))
		copy(bucket, items)
		w.byDate[key] = bucket
		w.dates = append(w.dates, d)
	}
	return w
}

// Bucket groups items under the given days using dayOf. Items whose day is not listed are
// dropped; relative item order inside a day is preserved.
func Bucket[T any](dates []DateTime, items []T, dayOf func(T) DateTime) Week[T] {
	byDate := make(map[string][]T, len(dates))
	for _, it := range items {
		key := dayOf(it).ToDateString()
		byDate[key] = append(byDate[key], it)
	}
	return NewWeek(dates, byDate)
}

// EmptyWeek is a single empty day keyed on today. It is never ready.
func EmptyWeek[T any](today DateTime) Week[T] {
	return NewWeek[T]([]DateTime{today}, nil)
}

func (w Week[T]) Dates() []DateTime {
	out := make([]DateTime, len(w.dates))
	copy(out, w.dates)
	return out
}

// AllMobs flattens every bucket in day order.
func (w Week[T]) AllMobs() []T {
	var out []T
	for _, d := range w.dates {
		out = append(out, w.byDate[d.ToDateString()]...)
	}
	return out
}

func (w Week[T]) GetSessionByDate(d DateTime) []T {
	return w.byDate[d.ToDateString()]
}

// IsReady reports whether the week spans at least five days.
func (w Week[T]) IsReady() bool {
	const numberOfWeekdays = 5
	return len(w.dates) >= numberOfWeekdays
}

// FirstDay and LastDay return the zero DateTime for a week without days.
func (w Week[T]) FirstDay() DateTime {
	if len(w.dates) == 0 {
		return DateTime{}
	}
	return w.dates[0]
}

func (w Week[T]) LastDay() DateTime {
	if len(w.dates) == 0 {
		return DateTime{}
	}
	return w.dates[len(w.dates)-1]
}
