package script_test

import (
	"context"
	"os"
	"path/filepath"

	"github.com/inconshreveable/log15"
	"github.com/mgnsk/linkedlist"
	"github.com/mgnsk/linkedlist/internal/script"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("parsing scripts", func() {
	When("the script is valid", func() {
		Specify("steps are decoded in order", func() {
			s, err := script.Parse([]byte(`
name: demo
steps:
  - op: push_back
    value: a
  - op: insert
    index: 0
    value: b
  - op: dump
`))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Name).To(Equal("demo"))
			Expect(s.Steps).To(HaveLen(3))
			Expect(s.Steps[1].Op).To(Equal(script.OpInsert))
			Expect(*s.Steps[1].Index).To(Equal(0))
			Expect(s.Steps[1].Value).To(Equal("b"))
		})
	})

	When("the script references environment variables", func() {
		Specify("they are expanded", func() {
			GinkgoT().Setenv("SCRIPT_VALUE", "from-env")

			s, err := script.Parse([]byte(`
steps:
  - op: push
    value: ${SCRIPT_VALUE}
`))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Steps[0].Value).To(Equal("from-env"))
		})
	})

	DescribeTable("invalid scripts are rejected",
		func(content string, expected error) {
			_, err := script.Parse([]byte(content))
			Expect(err).To(MatchError(expected))
		},
		Entry("unknown op", "steps:\n  - op: shuffle\n", script.ErrUnknownOp),
		Entry("missing index", "steps:\n  - op: get\n", script.ErrInvalidStep),
	)

	Specify("malformed YAML is an error", func() {
		_, err := script.Parse([]byte("steps: [\n"))
		Expect(err).To(HaveOccurred())
	})

	Specify("files are loaded from disk", func() {
		path := filepath.Join(GinkgoT().TempDir(), "script.yaml")
		Expect(os.WriteFile(path, []byte("name: disk\nsteps:\n  - op: clear\n"), 0o600)).To(Succeed())

		s, err := script.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Name).To(Equal("disk"))

		_, err = script.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("running scripts", func() {
	var (
		l       *linkedlist.List[string]
		records []*log15.Record
		runner  *script.Runner
	)

	BeforeEach(func() {
		l = linkedlist.New[string]()
		records = nil

		logger := log15.New()
		logger.SetHandler(log15.FuncHandler(func(r *log15.Record) error {
			records = append(records, r)
			return nil
		}))

		runner = script.NewRunner(script.WithLogger(logger))
	})

	index := func(i int) *int {
		return &i
	}

	Specify("every operation is applied to the list", func() {
		s := &script.Script{
			Name: "all ops",
			Steps: []script.Step{
				{Op: script.OpPushBack, Value: "b"},
				{Op: script.OpPushFront, Value: "a"},
				{Op: script.OpPush, Value: "c"},
				{Op: script.OpEnqueue, Value: "d"},
				{Op: script.OpInsert, Index: index(0), Value: "tail"},
				{Op: script.OpInsert, Index: index(5), Value: "head"},
				{Op: script.OpInsert, Index: index(2), Value: "mid"},
				{Op: script.OpDump},
				{Op: script.OpReverseDump},
				{Op: script.OpGet, Index: index(2)},
				{Op: script.OpSet, Index: index(2), Value: "MID"},
				{Op: script.OpRemove, Index: index(0)},
				{Op: script.OpRemove, Index: index(2)},
				{Op: script.OpFront},
				{Op: script.OpBack},
				{Op: script.OpPop},
				{Op: script.OpDequeue},
				{Op: script.OpPopFront},
				{Op: script.OpPopBack},
				{Op: script.OpClear},
				{Op: script.OpPopBack},
			},
		}

		results, err := runner.Run(context.Background(), l, s)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(len(s.Steps)))

		values := make([]string, len(results))
		for i, r := range results {
			values[i] = r.Value
		}

		Expect(values).To(Equal([]string{
			"", "", "", "", "", "", "",
			"[head a mid b c d tail]",
			"[tail d c b mid a head]",
			"mid",
			"",
			"tail",
			"MID",
			"head",
			"d",
			"d",
			"head",
			"a",
			"c",
			"1",
			"",
		}))

		Expect(results[len(results)-1].OK).To(BeFalse())
		Expect(results[len(results)-1].String()).To(Equal("20 pop_back: none"))
		Expect(results[7].String()).To(Equal("7 dump: [head a mid b c d tail]"))
		Expect(results[0].String()).To(Equal("0 push_back: ok"))
		Expect(l.IsEmpty()).To(BeTrue())

		Expect(records).NotTo(BeEmpty())
		Expect(records[len(records)-1].Msg).To(Equal("script finished"))
	})

	DescribeTable("contract violations are reported as errors",
		func(step script.Step) {
			l.PushBack("only")

			results, err := runner.Run(context.Background(), l, &script.Script{
				Steps: []script.Step{{Op: script.OpDump}, step},
			})

			Expect(err).To(MatchError(script.ErrInvalidStep))
			Expect(results).To(HaveLen(1))
			Expect(l.Slice()).To(Equal([]string{"only"}))
			Expect(records[len(records)-1].Lvl).To(Equal(log15.LvlError))
		},
		Entry("insert past the end", script.Step{Op: script.OpInsert, Index: index(2)}),
		Entry("remove at len", script.Step{Op: script.OpRemove, Index: index(1)}),
		Entry("get negative", script.Step{Op: script.OpGet, Index: index(-1)}),
		Entry("set without index", script.Step{Op: script.OpSet}),
	)

	Specify("unknown ops are reported as errors", func() {
		_, err := runner.Run(context.Background(), l, &script.Script{
			Steps: []script.Step{{Op: "sort"}},
		})
		Expect(err).To(MatchError(script.ErrUnknownOp))
	})

	Specify("a canceled context stops the script", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := runner.Run(ctx, l, &script.Script{
			Steps: []script.Step{{Op: script.OpPush, Value: "x"}},
		})
		Expect(err).To(MatchError(context.Canceled))
		Expect(results).To(BeEmpty())
		Expect(l.IsEmpty()).To(BeTrue())
	})

	Specify("stopping on missing values", func() {
		results, err := script.NewRunner(script.WithLogger(nil), script.WithStopOnNone(true)).Run(context.Background(), l, &script.Script{
			Steps: []script.Step{
				{Op: script.OpPush, Value: "x"},
				{Op: script.OpPop},
				{Op: script.OpPop},
				{Op: script.OpPush, Value: "y"},
			},
		})
		Expect(err).To(MatchError(script.ErrNoValue))
		Expect(results).To(HaveLen(3))
		Expect(l.IsEmpty()).To(BeTrue())
	})

	Specify("the default runner discards records", func() {
		results, err := script.NewRunner().Run(context.Background(), l, &script.Script{
			Steps: []script.Step{{Op: script.OpPush, Value: "x"}},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))
	})
})
