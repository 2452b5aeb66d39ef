package memory

import (
	"bytes"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

func (suite *ModelSuite) render() string {
	var buf bytes.Buffer
	suite.Require().NoError(suite.model.RenderSnapshot(&buf))
	return buf.String()
}

func (suite *ModelSuite) TestRenderSnapshotEmpty() {
	out := suite.render()
	suite.Contains(out, "STACK")
	suite.Contains(out, "HEAP")
	suite.Contains(out, "Heap Size: 0")
	suite.NotContains(out, "Frame 1 Contents")
}

func (suite *ModelSuite) TestRenderSnapshotIdempotent() {
	suite.Require().NoError(suite.model.CreateFrame("main", 0x100))
	suite.Require().NoError(suite.model.CreateInt("x", 42))
	suite.Require().NoError(suite.model.CreateDouble("pi", 3.14))
	suite.Require().NoError(suite.model.CreateHeapBuffer("buf", 10))

	framesBefore := suite.model.Frames()
	buffersBefore := suite.model.Buffers()

	first := suite.render()
	second := suite.render()
	if diff := cmp.Diff(first, second); diff != "" {
		suite.Failf("snapshot not idempotent", "%s", diff)
	}

	if diff := cmp.Diff(framesBefore, suite.model.Frames()); diff != "" {
		suite.Failf("rendering mutated frames", "%s", diff)
	}
	if diff := cmp.Diff(buffersBefore, suite.model.Buffers()); diff != "" {
		suite.Failf("rendering mutated buffers", "%s", diff)
	}
}

func (suite *ModelSuite) TestRenderSnapshotRows() {
	suite.Require().NoError(suite.model.CreateFrame("main", 0x100))
	suite.Require().NoError(suite.model.CreateInt("x", 42))
	suite.Require().NoError(suite.model.CreateHeapBuffer("buf", 10))

	out := suite.render()

	suite.Contains(out, fmt.Sprintf("| %-5d | %-13s | 0x%-14X | %-13d | %-10d |", 1, "main", 0x100, 479, 4))
	suite.Contains(out, "Frame 1 Contents:")
	suite.Contains(out, fmt.Sprintf("| %-13s | %-8s | %-15s |", "x", "int", "42"))
	suite.Contains(out, fmt.Sprintf("| %-13s | %-8s | %-15s |", "pointer", "pointer", "0x11"))
	suite.Contains(out, fmt.Sprintf("Heap Size: %d", 10+bufferHeaderSize))
	suite.Contains(out, fmt.Sprintf("| %-13s | 0x%-13X | %-6d |", "buf", bufferHeaderSize, 10))
}

func (suite *ModelSuite) TestRenderSnapshotOrdersFramesNewestFirst() {
	suite.createFrames(3)
	out := suite.render()

	suite.Less(
		bytes.Index([]byte(out), []byte("f3")),
		bytes.Index([]byte(out), []byte("f1")),
	)
}

func (suite *ModelSuite) TestRenderSnapshotMarksFreedRanges() {
	suite.Require().NoError(suite.model.CreateFrame("main", 0x100))
	suite.Require().NoError(suite.model.CreateHeapBuffer("a", 10))
	suite.Require().NoError(suite.model.CreateHeapBuffer("b", 10))
	suite.Require().NoError(suite.model.DeleteHeapBuffer("a"))

	out := suite.render()
	suite.Contains(out, "<free>")
	suite.Contains(out, "b")
}
