package e2e_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

func readDataset(path string) [][]string {
	data, err := os.ReadFile(path)
	Expect(err).NotTo(HaveOccurred())
	Expect(string(data)).To(HaveSuffix("\n"))

	var lines [][]string
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		lines = append(lines, strings.Split(line, " "))
	}
	return lines
}

var _ = Describe("basketgen", func() {
	var dir string

	BeforeEach(func() {
		dir = createTempDir()
	})

	Context("with valid arguments", func() {
		It("writes one transaction per customer in order", func() {
			out := filepath.Join(dir, "out.txt")
			session := runBasketgen(out, "3", "5", "2")
			Expect(session.ExitCode()).To(Equal(0))

			lines := readDataset(out)
			Expect(lines).To(HaveLen(3))
			for i, tokens := range lines {
				Expect(tokens[0]).To(Equal(strconv.Itoa(i)))
				Expect(len(tokens)).To(BeNumerically(">=", 2))
				Expect(len(tokens)).To(BeNumerically("<=", 3))
				for _, tok := range tokens[1:] {
					item, err := strconv.Atoi(tok)
					Expect(err).NotTo(HaveOccurred())
					Expect(item).To(BeNumerically(">=", 1))
					Expect(item).To(BeNumerically("<=", 5))
				}
			}
		})

		It("produces exactly \"0 1\" for the smallest dataset", func() {
			out := filepath.Join(dir, "min.txt")
			session := runBasketgen(out, "1", "1", "1")
			Expect(session.ExitCode()).To(Equal(0))

			data, err := os.ReadFile(out)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("0 1\n"))
		})

		It("keeps stdout empty and logs to stderr", func() {
			out := filepath.Join(dir, "out.txt")
			session := runBasketgen(out, "10", "5", "2")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out.Contents()).To(BeEmpty())
			Expect(session.Err).To(gbytes.Say("dataset written"))
		})

		It("reproduces a dataset from its seed", func() {
			a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")
			Expect(runBasketgen("--seed", "5", a, "100", "40", "6").ExitCode()).To(Equal(0))
			Expect(runBasketgen("--seed", "5", b, "100", "40", "6").ExitCode()).To(Equal(0))

			dataA, _ := os.ReadFile(a)
			dataB, _ := os.ReadFile(b)
			Expect(dataA).To(Equal(dataB))
		})

		It("completes with a progress bar", func() {
			out := filepath.Join(dir, "progress.txt")
			session := runBasketgen("--progress", "--seed", "1", out, "500", "10", "3")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out.Contents()).To(BeEmpty())
			Expect(readDataset(out)).To(HaveLen(500))
		})

		It("records runs in the ledger", func() {
			ledger := filepath.Join(dir, "runs.db")
			out := filepath.Join(dir, "out.txt")
			Expect(runBasketgen("--ledger", ledger, "--verify", out, "20", "5", "3").ExitCode()).To(Equal(0))

			session := runBasketgen("--ledger", ledger, "--list-runs")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say("completed"))
		})
	})

	Context("with invalid arguments", func() {
		DescribeTable("exits non-zero without writing the file",
			func(args ...string) {
				out := filepath.Join(dir, "out.txt")
				session := runBasketgen(append([]string{out}, args...)...)
				Expect(session.ExitCode()).To(Equal(2))
				Expect(session.Err).To(gbytes.Say("invalid argument"))
				_, err := os.Stat(out)
				Expect(os.IsNotExist(err)).To(BeTrue())
			},
			Entry("zero items", "3", "0", "2"),
			Entry("zero max basket", "3", "5", "0"),
			Entry("non-numeric customers", "many", "5", "2"),
			Entry("missing argument", "3", "5"),
		)
	})

	Context("when the output cannot be written", func() {
		It("exits 1 with an io failure", func() {
			out := filepath.Join(dir, "missing", "out.txt")
			session := runBasketgen(out, "3", "5", "2")
			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("io failure"))
		})
	})
})
