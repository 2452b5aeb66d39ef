package memory

func (suite *ModelSuite) TestCreateScalarNoActiveFrame() {
	suite.ErrorIs(suite.model.CreateInt("x", 1), ErrNoActiveFrame)
	suite.ErrorIs(suite.model.CreateDouble("y", 1.0), ErrNoActiveFrame)
	suite.ErrorIs(suite.model.CreateChar("z", 'z'), ErrNoActiveFrame)
	suite.Zero(suite.model.StackUsed())
}

func (suite *ModelSuite) TestCreateIntStoresValue() {
	suite.Require().NoError(suite.model.CreateFrame("f1", 0x100))
	suite.Require().NoError(suite.model.CreateInt("x", 42))

	suite.Equal(DefaultFrameMetadataSize+4, suite.model.StackUsed())

	frames := suite.model.Frames()
	suite.Require().Len(frames, 1)
	suite.Equal(4, frames[0].Size)

	v, ok := suite.variable(frames[0], "x")
	suite.Require().True(ok)
	suite.Equal(KindInt, v.Kind)
	suite.Equal("42", v.Value)
}

func (suite *ModelSuite) TestCreateDoubleAndChar() {
	suite.Require().NoError(suite.model.CreateFrame("f1", 0x100))
	suite.Require().NoError(suite.model.CreateDouble("pi", 3.14))
	suite.Require().NoError(suite.model.CreateChar("c", 'k'))

	frames := suite.model.Frames()
	suite.Require().Len(frames, 1)
	suite.Equal(9, frames[0].Size)
	suite.Equal(DefaultFrameMetadataSize+9, suite.model.StackUsed())

	pi, ok := suite.variable(frames[0], "pi")
	suite.Require().True(ok)
	suite.Equal(KindDouble, pi.Kind)
	suite.Equal("3.140000", pi.Value)

	c, ok := suite.variable(frames[0], "c")
	suite.Require().True(ok)
	suite.Equal(KindChar, c.Kind)
	suite.Equal("k", c.Value)
}

func (suite *ModelSuite) TestCreateScalarTargetsCurrentFrame() {
	suite.createFrames(2)
	suite.Require().NoError(suite.model.CreateInt("x", 7))

	frames := suite.model.Frames()
	suite.Require().Len(frames, 2)
	suite.Equal("f2", frames[0].Name)
	suite.Len(frames[0].Variables, 1)
	suite.Empty(frames[1].Variables)
}

func (suite *ModelSuite) TestCreateScalarFrameFull() {
	suite.Require().NoError(suite.model.CreateFrame("f1", 0x100))
	// 20 ints fill the 80 payload bytes exactly
	for i := 0; i < 20; i++ {
		suite.Require().NoError(suite.model.CreateInt("x", int32(i)))
	}
	used := suite.model.StackUsed()

	suite.ErrorIs(suite.model.CreateInt("y", 1), ErrFrameFull)
	suite.ErrorIs(suite.model.CreateDouble("y", 1.0), ErrFrameFull)
	suite.ErrorIs(suite.model.CreateChar("y", 'y'), ErrFrameFull)
	suite.Equal(used, suite.model.StackUsed())
}

func (suite *ModelSuite) TestCreateScalarKindCapacityExceeded() {
	// with the reference limits the payload cap always fires first, so
	// raise it to expose the per-kind capacity
	limits := DefaultLimits()
	limits.MaxFrameSize = 200
	model := NewModel(WithLimits(limits))

	suite.Require().NoError(model.CreateFrame("f1", 0x100))
	for i := 0; i < limits.MaxDoubles; i++ {
		suite.Require().NoError(model.CreateDouble("d", float64(i)))
	}
	used := model.StackUsed()

	suite.ErrorIs(model.CreateDouble("d", 11.0), ErrKindCapacityExceeded)
	suite.Equal(used, model.StackUsed())
}

func (suite *ModelSuite) TestScalarNameTruncated() {
	suite.Require().NoError(suite.model.CreateFrame("f1", 0x100))
	suite.Require().NoError(suite.model.CreateInt("averylongname", 1))

	frames := suite.model.Frames()
	suite.Require().Len(frames, 1)
	_, ok := suite.variable(frames[0], "averylon")
	suite.True(ok)
}
