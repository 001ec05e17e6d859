package acquire

import "github.com/amp-labs/amp-acquire/errors"

// CloseAll closes the given acquisitions in order, attempting every close
// even when an earlier one fails, and returns the collected failures as a
// single error (nil when every close succeeded). Nil acquisitions are
// safely skipped.
//
// Pass wrappers before their roots: an upgraded acquisition must unwind
// before the root it upgraded closes.
//
//	reader, _ := acquirable.AcquireRead()
//	writer, _ := acquirable.AcquireWrite()
//	defer func() { _ = acquire.CloseAll(writer, reader) }()
func CloseAll(acquisitions ...Acquisition) error {
	var errs errors.Collection

	for _, acquisition := range acquisitions {
		if acquisition == nil {
			continue
		}

		errs.Add(acquisition.Close())
	}

	return errs.GetError()
}
