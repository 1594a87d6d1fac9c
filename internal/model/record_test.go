package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RecordTestSuite struct {
	suite.Suite
	movies *Mapper
	shows  *Mapper
}

func (s *RecordTestSuite) SetupTest() {
	s.movies = newTestMapper(s.T(), NewSchema("movie",
		Field{Name: "title", Required: true, Unique: true},
		Field{Name: "genre"},
		Field{Name: "duration", Type: FieldInteger},
	))
	s.shows = newTestMapper(s.T(), NewSchema("show",
		Field{Name: "movie_id", Type: FieldInteger, Required: true},
		Field{Name: "show_time", Type: FieldTime, Required: true},
	))

	s.movies.HasMany("shows", "movie_id", s.shows)
	s.shows.BelongsTo("movie", "movie_id", s.movies)
}

func TestRecordSuite(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}

func (s *RecordTestSuite) createMovie(title string) *Record {
	rec, err := s.movies.Create(Attrs{"title": title, "genre": "Sci-Fi", "duration": 148})
	s.Require().NoError(err)
	s.Require().True(rec.Persisted(), "create failed: %v", rec.Errors())
	return rec
}

func (s *RecordTestSuite) TestCreateFindRoundTrip() {
	// A string duration must come back as the coerced integer.
	rec, err := s.movies.Create(Attrs{"title": "Inception", "genre": "Sci-Fi", "duration": "148"})
	s.Require().NoError(err)
	s.Require().True(rec.Persisted(), "create failed: %v", rec.Errors())
	s.Equal(148, rec.Get("duration"))

	found, err := s.movies.Find(rec.ID())
	s.Require().NoError(err)
	s.Require().NotNil(found)

	if diff := cmp.Diff(rec.Attrs(), found.Attrs()); diff != "" {
		s.T().Errorf("attrs mismatch (-created +found):\n%s", diff)
	}
	s.True(rec.Equal(found))
}

func (s *RecordTestSuite) TestFindUnknownIDIsNil() {
	rec, err := s.movies.Find(999)
	s.Require().NoError(err)
	s.Nil(rec)
}

func (s *RecordTestSuite) TestSaveTwiceIsIdempotent() {
	rec := s.createMovie("Inception")
	id := rec.ID()

	ok, err := rec.Save()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(id, rec.ID())

	all, err := s.movies.All()
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *RecordTestSuite) TestAutoIncrementNeverReuses() {
	for i, title := range []string{"Alien", "Heat", "Tenet"} {
		rec := s.createMovie(title)
		s.Equal(i+1, rec.ID())
	}

	second, err := s.movies.Find(2)
	s.Require().NoError(err)
	s.Require().NoError(second.Destroy())

	rec := s.createMovie("Dune")
	s.Equal(4, rec.ID())
}

func (s *RecordTestSuite) TestAllReturnsFileOrder() {
	s.createMovie("Alien")
	s.createMovie("Heat")

	all, err := s.movies.All()
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("Alien", all[0].Get("title"))
	s.Equal("Heat", all[1].Get("title"))
}

func (s *RecordTestSuite) TestWhereMatchesAllConditions() {
	s.createMovie("Alien")
	rec, err := s.movies.Create(Attrs{"title": "Heat", "genre": "Crime", "duration": 170})
	s.Require().NoError(err)
	s.Require().True(rec.Persisted())

	matched, err := s.movies.Where(Attrs{"genre": "Crime", "duration": 170})
	s.Require().NoError(err)
	s.Require().Len(matched, 1)
	s.Equal("Heat", matched[0].Get("title"))

	none, err := s.movies.Where(Attrs{"genre": "Crime", "duration": 90})
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *RecordTestSuite) TestWhereCoercesConditionValues() {
	s.createMovie("Inception")

	matched, err := s.movies.Where(Attrs{"duration": "148"})
	s.Require().NoError(err)
	s.Len(matched, 1)
}

func (s *RecordTestSuite) TestUpdateMergesAndReloads() {
	rec := s.createMovie("Inception")

	ok, err := rec.Update(Attrs{"genre": "Thriller", "duration": "149"})
	s.Require().NoError(err)
	s.Require().True(ok, "update failed: %v", rec.Errors())

	s.Equal("Thriller", rec.Get("genre"))
	s.Equal(149, rec.Get("duration"))
	s.Equal("Inception", rec.Get("title"))

	found, err := s.movies.Find(rec.ID())
	s.Require().NoError(err)
	s.True(rec.Equal(found))
}

func (s *RecordTestSuite) TestDestroyRemovesRow() {
	rec := s.createMovie("Inception")

	s.Require().NoError(rec.Destroy())

	found, err := s.movies.Find(rec.ID())
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *RecordTestSuite) TestCopiesAreIndependentUntilSaved() {
	rec := s.createMovie("Inception")

	other, err := s.movies.Find(rec.ID())
	s.Require().NoError(err)

	rec.Set("genre", "Thriller")
	s.Equal("Sci-Fi", other.Get("genre"))

	ok, err := rec.Save()
	s.Require().NoError(err)
	s.Require().True(ok)

	reread, err := s.movies.Find(rec.ID())
	s.Require().NoError(err)
	s.Equal("Thriller", reread.Get("genre"))
}

func (s *RecordTestSuite) TestBelongsTo() {
	movie := s.createMovie("Inception")

	show, err := s.shows.Create(Attrs{"movie_id": movie.ID(), "show_time": "20:00"})
	s.Require().NoError(err)
	s.Require().True(show.Persisted(), "create failed: %v", show.Errors())

	owner, err := show.Related("movie")
	s.Require().NoError(err)
	s.Require().NotNil(owner)
	s.True(owner.Equal(movie))
}

func (s *RecordTestSuite) TestHasManyResolvesFresh() {
	movie := s.createMovie("Inception")

	// The show is created after the movie record was loaded and must still
	// be visible through the relationship.
	show, err := s.shows.Create(Attrs{"movie_id": movie.ID(), "show_time": "20:00"})
	s.Require().NoError(err)
	s.Require().True(show.Persisted())

	shows, err := movie.Collection("shows")
	s.Require().NoError(err)
	s.Require().Len(shows, 1)
	s.True(shows[0].Equal(show))
}

func (s *RecordTestSuite) TestUnknownRelationIsAnError() {
	movie := s.createMovie("Inception")

	_, err := movie.Related("director")
	s.Error(err)

	_, err = movie.Collection("sequels")
	s.Error(err)
}

func TestSetIgnoresUndeclaredFields(t *testing.T) {
	mapper := newTestMapper(t, newMemberSchema())

	rec := mapper.New(Attrs{"name": "John Doe", "nickname": "JD"})
	require.Nil(t, rec.Get("nickname"))
}
