package cmf

import "github.com/npillmayer/cmfc/input/cmf/ast"

// parseTable scans a table. The cursor is positioned at "---".
//
//     ---
//     |a|b|
//     |c|d|
//     ---
//
// A row consists of one or more physical lines of cells, terminated by a line
// of dashes. Cells of continuation lines are appended to the cell of the same
// column of the row's first line. A '|' line following a row's dash line starts
// the next row of the same table; any other line ends the table.
func (s *scanner) parseTable() (*ast.Node, error) {
	start := s.pos
	s.run('-')
	if s.peek() != '\n' {
		return nil, s.errorf(start, "expected valid table after ---")
	}
	s.advance(1)
	if s.peek() != '|' {
		return nil, s.errorf(start, "expected valid table after ---")
	}
	table := ast.New(ast.Table)
	for s.peek() == '|' {
		row, err := s.parseTableRow()
		if err != nil {
			return nil, err
		}
		table.AddChild(row)
	}
	tracer().Debugf("table with %d rows", table.ChildCount())
	return table, nil
}

func (s *scanner) parseTableRow() (*ast.Node, error) {
	row := ast.New(ast.TableRow)
	first := true
	for {
		s.advance(1) // leading '|'
		col := 0
		for s.peek() != '\n' {
			if s.eof() {
				return nil, s.errorf(s.pos, "unterminated table row")
			}
			lo := s.pos
			s.scanCell()
			if s.peek() != '|' {
				return nil, s.errorf(lo, "incomplete table row data")
			}
			text := s.text(lo, s.pos)
			if cell, ok := row.Child(col); ok && !first {
				cell.Text[0] += " " + text
			} else if !first {
				return nil, s.errorf(lo, "table row continuation exceeds column count")
			} else {
				row.AddChild(ast.NewText(ast.TableCell, text, 0))
			}
			s.advance(1) // trailing '|'
			col++
		}
		first = false
		s.advance(1)
		switch s.peek() {
		case '-':
			at := s.pos
			s.run('-')
			if !s.eof() && s.peek() != '\n' {
				return nil, s.errorf(at, "table row improperly terminated")
			}
			s.advance(1)
			return row, nil
		case '|':
			continue
		case 0:
			return nil, s.errorf(s.pos, "unterminated table row")
		default:
			return nil, s.errorf(s.pos, "expected row to either terminate or continue")
		}
	}
}

// scanCell moves the cursor to the next unescaped '|', a newline or the end
// of the source.
func (s *scanner) scanCell() {
	for !s.eof() {
		switch s.src[s.pos] {
		case '|', '\n':
			return
		case '\\':
			if s.pos+1 < len(s.src) && s.src[s.pos+1] != '\n' {
				s.pos++
			}
		}
		s.pos++
	}
}
