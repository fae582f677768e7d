// Command seed populates the catalog with a small sample data set. It goes
// through the service layer so all validation and transaction rules apply.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/filmgrid/movie-catalog/internal/config"
	"github.com/filmgrid/movie-catalog/internal/repository"
	"github.com/filmgrid/movie-catalog/internal/service"
	"github.com/filmgrid/movie-catalog/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := store.New(ctx, cfg.DBURL, store.Options{Logger: logger})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer st.Close()

	svc := service.New(st, repository.New(st), logger)

	directors := map[string]int64{}
	for _, d := range []struct {
		name string
		born int
	}{
		{"Christopher Nolan", 1970},
		{"Denis Villeneuve", 1967},
		{"Greta Gerwig", 1983},
	} {
		born := d.born
		director, err := svc.CreateDirector(ctx, service.DirectorInput{Name: d.name, BirthYear: &born})
		if err != nil {
			log.Fatalf("create director %q: %v", d.name, err)
		}
		directors[d.name] = director.ID
		logger.Printf("director %q -> id %d", d.name, director.ID)
	}

	genres := map[string]int64{}
	for _, name := range []string{"Sci-Fi", "Drama", "Thriller", "Comedy"} {
		genre, err := svc.CreateGenre(ctx, service.GenreInput{Name: name})
		if err != nil {
			log.Fatalf("create genre %q: %v", name, err)
		}
		genres[name] = genre.ID
		logger.Printf("genre %q -> id %d", name, genre.ID)
	}

	movies := []struct {
		title    string
		director string
		year     int
		genres   []string
		scores   []int
	}{
		{"Inception", "Christopher Nolan", 2010, []string{"Sci-Fi", "Thriller"}, []int{9, 8, 10}},
		{"Dune", "Denis Villeneuve", 2021, []string{"Sci-Fi", "Drama"}, []int{8, 10}},
		{"Arrival", "Denis Villeneuve", 2016, []string{"Sci-Fi", "Drama"}, []int{9, 9, 7}},
		{"Barbie", "Greta Gerwig", 2023, []string{"Comedy"}, []int{7, 8}},
	}
	for _, m := range movies {
		genreIDs := make([]int64, 0, len(m.genres))
		for _, g := range m.genres {
			genreIDs = append(genreIDs, genres[g])
		}
		movie, err := svc.CreateMovie(ctx, service.MovieInput{
			Title:       m.title,
			DirectorID:  directors[m.director],
			ReleaseYear: m.year,
			GenreIDs:    genreIDs,
		})
		if err != nil {
			log.Fatalf("create movie %q: %v", m.title, err)
		}
		for _, score := range m.scores {
			if _, err := svc.AddRating(ctx, movie.Movie.ID, score); err != nil {
				log.Fatalf("rate movie %q: %v", m.title, err)
			}
		}
		logger.Printf("movie %q -> id %d (%d ratings)", m.title, movie.Movie.ID, len(m.scores))
	}

	logger.Println("seed complete")
}
