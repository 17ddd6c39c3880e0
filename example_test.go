package textspan_test

import (
	"fmt"

	"github.com/dshills/textspan"
)

func ExampleLocateWords() {
	out, _ := textspan.LocateWords(
		textspan.Strings("Hello, world!"),
		textspan.Strings("en-US"),
	)
	fmt.Println(out[0])
	// Output: [{1 6} {8 13}]
}

func ExampleStatsGeneral() {
	st, _ := textspan.StatsGeneral(textspan.Strings("a b", "  "))
	fmt.Printf("lines=%d nonEmpty=%d chars=%d nonWhite=%d\n",
		st.Lines, st.LinesNonEmpty, st.Chars, st.CharsNonWhite)
	// Output: lines=2 nonEmpty=1 chars=5 nonWhite=2
}

func ExampleStatsLatex() {
	st, _ := textspan.StatsLatex(
		textspan.Strings(`\begin{itemize}\item one two\end{itemize}`),
	)
	fmt.Printf("words=%d cmds=%d envirs=%d\n", st.Words, st.Cmds, st.Envirs)
	// Output: words=2 cmds=1 envirs=1
}
