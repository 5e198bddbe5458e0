package agent_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"commander/agent"
)

var _ = Describe("Registry", func() {
	It("keeps declaration order", func() {
		r := agent.NewRegistry(
			agent.CommandSpec{Name: "b", Info: agent.CommandInfo{Description: "B"}},
			agent.CommandSpec{Name: "a", Info: agent.CommandInfo{Description: "A"}},
		)
		Expect(r.Names()).To(Equal([]string{"b", "a"}))
		Expect(r.Len()).To(Equal(2))
		Expect(r.Has("a")).To(BeTrue())
		Expect(r.Has("c")).To(BeFalse())
	})

	It("hands out copies", func() {
		examples := []string{"x 1"}
		r := agent.NewRegistry(agent.CommandSpec{Name: "x", Info: agent.CommandInfo{Examples: examples}})
		examples[0] = "changed by caller"

		info, ok := r.Lookup("x")
		Expect(ok).To(BeTrue())
		Expect(info.Examples).To(Equal([]string{"x 1"}))

		info.Examples[0] = "changed again"
		names := r.Names()
		names[0] = "y"

		again, _ := r.Lookup("x")
		Expect(again.Examples).To(Equal([]string{"x 1"}))
		Expect(r.Names()).To(Equal([]string{"x"}))
	})

	It("replaces a duplicate name in place", func() {
		r := agent.NewRegistry(
			agent.CommandSpec{Name: "a", Info: agent.CommandInfo{Description: "first"}},
			agent.CommandSpec{Name: "b"},
			agent.CommandSpec{Name: "a", Info: agent.CommandInfo{Description: "second"}},
		)
		Expect(r.Names()).To(Equal([]string{"a", "b"}))
		info, _ := r.Lookup("a")
		Expect(info.Description).To(Equal("second"))
	})

	It("reports missing commands", func() {
		_, ok := agent.NewRegistry().Lookup("nope")
		Expect(ok).To(BeFalse())
	})
})
