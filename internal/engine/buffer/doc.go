// Package buffer provides the in-memory representation of a file as an
// ordered sequence of editable lines.
//
// The buffer package provides:
//
//   - Line: a single row of text with a cached codepoint length
//   - Buffer: an ordered collection of Lines plus a filename and a modified flag
//   - Position: a (column, row) location measured in codepoints
//   - Loading from and persisting to plain UTF-8 text files
//
// Basic usage:
//
//	buf, err := buffer.Open("notes.txt")
//	if err != nil {
//	    // permission denied, invalid UTF-8, ...
//	}
//
//	buf.Insert(buffer.Position{X: 0, Y: 0}, 'H')  // type a character
//	buf.Insert(buffer.Position{X: 1, Y: 0}, '\n') // split the line
//	buf.Delete(buffer.Position{X: 1, Y: 0})       // join it back
//
//	if err := buf.Save(); err != nil {
//	    // buf.IsModified() is still true, the user may retry
//	}
//
// Positions:
//
// Columns count codepoints, not bytes or terminal cells. A Position whose row
// equals LineCount() addresses the synthetic end-of-buffer row; its column is
// always 0. Typing on that row materializes a real line.
//
// Errors:
//
// File system failures and undecodable content are returned as *FileError
// values. Out-of-range positions passed into Line or Buffer edits are
// programming errors and panic with a *BoundsError.
//
// File format:
//
// Save writes a single '\n' after every line, including the last one, so a
// file that lacked a final terminator gains one. CRLF terminators are read
// and written back as LF.
//
// Thread Safety:
//
// Buffer and Line are not safe for concurrent use. They are owned by the
// editor's single control loop.
package buffer
