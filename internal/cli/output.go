package cli

import (
	"fmt"

	"github.com/fatih/color"
)

func logstep(text string) {
	fmt.Println(
		color.BlueString(" •"),
		color.New(color.Bold).Sprint(text),
	)
}

func logdetail(text string) {
	fmt.Println(
		color.New(color.FgHiBlack).Sprint("   └"),
		color.New(color.FgHiBlack).Sprint(text),
	)
}

func logok(text string) {
	color.Green(" ✔ %s", text)
}

func logwarn(text string) {
	color.Yellow(" ! %s", text)
}

func logfail(text string) {
	color.Red(" ✘ %s", text)
}
