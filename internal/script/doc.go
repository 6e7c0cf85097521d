// Package script embeds a Lua interpreter that can read and edit the
// document and react to editor events.
//
// Scripts see a global table named editor:
//
//	editor.text()                      -- whole document
//	editor.line(n)                     -- text of line n
//	editor.line_count()
//	editor.cursor()                    -- line, col of the caret
//	editor.set_cursor(line, col)
//	editor.select(l1, c1, l2, c2)      -- anchor, then caret
//	editor.selection()                 -- l1, c1, l2, c2 or nil
//	editor.selected_text()
//	editor.insert(text)                -- at the caret
//	editor.erase(l1, c1, l2, c2)
//	editor.extract(l1, c1, l2, c2)
//	editor.indent()
//	editor.dedent()
//	editor.on(topic, fn)               -- returns a hook id
//	editor.off(id)
//
// Lines and columns are 1-based. Only the base, table, string and math
// libraries are available, and base functions that load code from disk are
// removed.
//
// A State is not safe for concurrent use from several goroutines. Hooks run
// on the goroutine that publishes the event, so the application publishes
// from the goroutine that owns the State.
package script
