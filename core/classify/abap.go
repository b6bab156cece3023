package classify

import (
	"strings"

	"github.com/gaurav-prasanna/codepaste/core"
)

// abapThreshold requires at least two strong ABAP idioms, so a lone
// "endif." or "report " in another language does not tip the result.
const abapThreshold = 5

func kw(weight int, subs ...string) Signal {
	return Signal{Weight: weight, Match: lowerContains(subs...)}
}

func kwAll(weight int, subs ...string) Signal {
	return Signal{Weight: weight, Match: lowerContainsAll(subs...)}
}

var abapRule = ScoreRule{
	Language:  core.LangABAP,
	Threshold: abapThreshold,
	Signals: []Signal{
		// block terminators
		kw(3, "endloop"),
		kw(3, "endform"),
		kw(3, "endmethod"),
		kw(3, "endclass"),
		kw(3, "endfunction"),
		kw(3, "endtry"),
		kw(3, "endif."),
		kw(3, "endwhile"),
		kw(3, "endcase"),
		kw(3, "endselect"),
		kw(3, "endat"),
		kw(3, "enddo"),

		{Weight: 3, Match: func(s *Sample) bool {
			return strings.Contains(s.Lower, "report ") && !strings.Contains(s.Lower, "reporter")
		}},

		// chained declarations
		kw(3, "data:", "data :"),
		kw(3, "types:", "types :"),
		kw(3, "tables:", "tables :"),
		kw(3, "parameters:", "parameters :"),
		kw(3, "constants:", "constants :"),

		// internal tables
		kw(3, "loop at "),
		kw(3, "read table "),
		kw(3, "into table"),
		kw(3, "into corresponding"),
		kwAll(2, "append ", " to "),
		kw(3, "delete adjacent"),
		kwAll(2, "sort ", " by "),

		// Open SQL
		kw(3, "select single"),
		kw(2, "select * from"),
		kwAll(2, "select ", " into ", " from "),

		// subroutines and calls
		kwAll(3, "form ", "endform"),
		kw(2, "perform "),
		kw(3, "call function"),
		kw(3, "call method"),

		// system fields
		kw(3, "sy-subrc"),
		kw(3, "sy-tabix"),
		kw(3, "sy-index"),
		kw(3, "sy-datum"),
		kw(3, "sy-uzeit"),
		kw(3, "sy-uname"),

		// field symbols
		kw(3, "field-symbols"),
		kw(3, "<fs_"),
		{Weight: 2, Match: func(s *Sample) bool {
			return strings.Contains(s.Text, "ASSIGN ") || strings.Contains(s.Lower, " assign ")
		}},
		kw(3, "unassign"),

		// type declarations
		kw(3, "type ref to"),
		kw(3, "type table of"),
		kw(3, "type standard table"),
		kw(3, "type sorted table"),
		kw(3, "type hashed table"),
		kw(3, "with header line"),
		kwAll(3, "begin of", "end of"),

		// parameter passing
		{Weight: 3, Match: allOf(lowerContains("exporting"), lowerContains("importing", "tables"))},
		kwAll(2, "changing ", "="),
		kw(3, "returning value"),

		// classes
		kwAll(3, "class ", "definition"),
		kwAll(3, "class ", "implementation"),

		// events
		kw(3, "at selection-screen"),
		kw(3, "start-of-selection"),
		kw(3, "end-of-selection"),
		kw(2, "initialization"),

		// string processing
		kwAll(3, "concatenate ", " into "),
		kwAll(3, "split ", " at "),
		kw(3, "condense "),
		kwAll(2, "translate ", " to "),

		// list output
		kw(3, "write:", "write /"),

		// constructor expressions
		kw(3, "new #("),
		kw(3, "value #("),
		kw(3, "conv #("),
		kw(3, "cond #("),
		kw(3, "switch #("),
		kw(3, "corresponding #("),

		// predicates
		kw(2, "is initial"),
		kw(3, "is not initial"),
		kw(3, "is bound"),
		kw(3, "is assigned"),
		kw(3, "line_exists("),

		// LUW and authority
		kw(3, "commit work"),
		kw(3, "rollback work"),
		kw(3, "authority-check"),

		kwAll(2, "message ", " type "),

		// built-in functions
		kw(2, "lines("),
		{Weight: 1, Match: func(s *Sample) bool {
			return strings.Contains(s.Lower, "strlen(") && !strings.Contains(s.Text, "strlen(const")
		}},
		kw(3, "xstrlen("),
		kw(3, "boolc("),
		kw(3, "xsdbool("),
	},
}
