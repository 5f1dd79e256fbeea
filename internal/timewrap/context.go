package timewrap

// InfoKey is the store key under which a request's Info lives.
const InfoKey = "time_wrap_info"

// Store is a string-keyed, request-scoped value store such as *pipeline.Context.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, v any)
}

// FromContext returns the Info stored in s, creating and storing one if needed.
// A value of any other type under InfoKey is replaced.
func FromContext(s Store) *Info {
	if v, ok := s.Get(InfoKey); ok {
		if info, ok := v.(*Info); ok && info != nil {
			return info
		}
	}
	info := &Info{}
	s.Set(InfoKey, info)
	return info
}
