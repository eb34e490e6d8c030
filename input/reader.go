// This file is part of xrambus.
//
// xrambus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// xrambus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with xrambus.  If not, see <https://www.gnu.org/licenses/>.

package input

import (
	"errors"
	"io"

	"github.com/jetsetilly/xrambus/curated"
)

// the number of bytes that can be waiting in a Reader before the reading
// goroutine stalls
const readerBuffer = 256

// Reader is a non-blocking source of bytes read from an io.Reader. Reading
// happens in a separate goroutine.
type Reader struct {
	ch   chan uint8
	errs chan error
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(r io.Reader) *Reader {
	rdr := &Reader{
		ch:   make(chan uint8, readerBuffer),
		errs: make(chan error, 1),
	}
	go rdr.read(r)
	return rdr
}

func (rdr *Reader) read(r io.Reader) {
	b := make([]byte, 64)
	for {
		n, err := r.Read(b)
		for _, c := range b[:n] {
			rdr.ch <- c
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				rdr.errs <- err
			}
			close(rdr.ch)
			return
		}
	}
}

// Poll implements the injector.Source interface. An error from the
// io.Reader is returned once, after all bytes read before the error have
// been polled. The end of the input is not an error.
func (rdr *Reader) Poll() (uint8, bool, error) {
	select {
	case b, ok := <-rdr.ch:
		if ok {
			return b, true, nil
		}
		select {
		case err := <-rdr.errs:
			return 0, false, curated.Errorf("input: %v", err)
		default:
		}
	default:
	}
	return 0, false, nil
}
