package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samvad-hq/wunderlist-go/internal/domain"
	"github.com/samvad-hq/wunderlist-go/pkg/wunderlist"
)

const usage = `usage: wunderlist <command> [key=value ...]

commands:
  ops               list every API operation and its arguments
  history [N]       show the last N dispatched calls (default 20)
  <operation> ...   call an operation, e.g. "create_list title=Groceries"

Values are parsed as JSON when possible, e.g. task='{"list_id":1,"title":"milk"}'.
`

func writeUsage(out io.Writer) error {
	_, err := io.WriteString(out, usage)
	return err
}

func writeOperations(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPERATION\tMETHOD\tPATH\tARGS")
	for _, op := range wunderlist.Operations() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.Name, op.Method, op.Path, strings.Join(op.Params(), ","))
	}
	return tw.Flush()
}

type envelopeOutput struct {
	StatusCode int `json:"status_code"`
	Data       any `json:"data"`
	RawBytes   int `json:"raw_bytes,omitempty"`
}

func writeEnvelope(out io.Writer, env *wunderlist.Envelope) error {
	o := envelopeOutput{StatusCode: env.StatusCode, Data: env.Data}
	if env.Data == nil {
		o.RawBytes = len(env.Raw)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

func writeHistory(out io.Writer, recs []domain.CallRecord) error {
	enc := json.NewEncoder(out)
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
