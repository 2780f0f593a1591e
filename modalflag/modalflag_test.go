// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/modalflag"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-v", "peek", "-bios", "gba.bin", "game.gba", "0x08000000"})
	verbose := md.AddBool("v", false, "verbose")
	md.AddSubModes("map", "peek")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *verbose, true)
	test.ExpectEquality(t, md.Mode(), "PEEK")

	md.NewMode()
	bios := md.AddString("bios", "", "BIOS file")
	p, err = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *bios, "gba.bin")
	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "game.gba")
	test.ExpectEquality(t, md.Path(), "PEEK")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"game.gba"})
	md.AddSubModes("header", "map")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "HEADER")
	test.ExpectEquality(t, md.GetArg(0), "game.gba")

	// sub-modes of sub-modes
	md.NewArgs([]string{"a", "b", "x"})
	md.AddSubModes("A")
	_, _ = md.Parse()
	md.NewMode()
	md.AddSubModes("B", "C")
	_, _ = md.Parse()
	test.ExpectEquality(t, md.Path(), "HEADER/A/B")
	test.ExpectEquality(t, md.GetArg(0), "x")
}

func TestRepeatedFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-watch", "0x03000000", "-watch", "READ 0x04000130", "-at", "0x0e000000", "trace.txt"})
	watches := md.AddStrings("watch", "add watch")
	at := md.AddAddress("at", 0x08000000, "address")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(*watches), 2)
	test.ExpectEquality(t, (*watches)[1], "READ 0x04000130")
	test.ExpectEquality(t, *at, uint32(0x0e000000))

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.DemandEquality(t, len(visited), 2)
	test.ExpectEquality(t, visited[0], "at")

	md.NewArgs([]string{"-at", "nowhere"})
	md.AddAddress("at", 0, "address")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}

func TestHelpModePath(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"map", "-help"})
	md.AddSubModes("HEADER", "MAP")
	_, _ = md.Parse()

	md.NewMode()
	md.AdditionalHelp("prints the address map")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("Usage: for MAP mode\n\nprints the address map\n"))
}
