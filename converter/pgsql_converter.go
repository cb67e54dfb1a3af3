package converter

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/notaneet/rasp63/model"
	"github.com/notaneet/rasp63/utils"
)

type PGSQLConverter struct{}

const Schema = `CREATE TABLE IF NOT EXISTS schedule_days (
	id SERIAL PRIMARY KEY,
	"group" TEXT NOT NULL,
	group_id INTEGER NOT NULL,
	week INTEGER NOT NULL,
	date DATE NOT NULL,
	UNIQUE ("group", date)
);
CREATE TABLE IF NOT EXISTS schedule_lessons (
	day_id INTEGER NOT NULL REFERENCES schedule_days (id) ON DELETE CASCADE,
	period INTEGER NOT NULL,
	begin_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	subject TEXT NOT NULL,
	lesson_type TEXT NOT NULL,
	teacher TEXT NOT NULL,
	attachment TEXT NOT NULL,
	place TEXT NOT NULL,
	online BOOLEAN NOT NULL,
	groups TEXT NOT NULL,
	comment TEXT NOT NULL
);`

const DeleteDayQuery = "DELETE FROM schedule_days WHERE \"group\" = $1 AND date = $2"
const InsertDayQuery = "INSERT INTO schedule_days (\"group\", group_id, week, date) VALUES ($1, $2, $3, $4) RETURNING id"
const InsertLessonQuery = "INSERT INTO schedule_lessons (day_id, period, begin_time, end_time, subject, lesson_type, teacher, attachment, place, online, groups, comment) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)"

// Write out - строка подключения к postgres. Дни группы из недели перезаписываются целиком.
func (p PGSQLConverter) Write(week model.Week, out string) error {
	if out == "" {
		return fmt.Errorf("credentials can not be empty")
	}

	conn, err := sqlx.Connect("postgres", out)
	if err != nil {
		return err
	}
	defer conn.Close()

	return p.WriteDB(conn, week)
}

func (p PGSQLConverter) WriteDB(conn *sqlx.DB, week model.Week) (err error) {
	if _, err = conn.Exec(Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := conn.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	insertDay, err := tx.Preparex(InsertDayQuery)
	if err != nil {
		return err
	}
	insertLesson, err := tx.Preparex(InsertLessonQuery)
	if err != nil {
		return err
	}

	for _, day := range week.Days {
		date := utils.Truncate(day.Date)
		if _, err = tx.Exec(DeleteDayQuery, week.Group, date); err != nil {
			return fmt.Errorf("delete %s: %w", date.Format(utils.DateLayout), err)
		}

		var dayID int64
		if err = insertDay.QueryRowx(week.Group, week.GroupID, week.Number, date).Scan(&dayID); err != nil {
			return fmt.Errorf("insert %s: %w", date.Format(utils.DateLayout), err)
		}

		for period, slot := range day.Lessons {
			var begin, end string
			if period < len(week.TimeTable) {
				begin, end = week.TimeTable[period].Begin.String(), week.TimeTable[period].End.String()
			}
			for _, lesson := range slot {
				if _, err = insertLesson.Exec(dayID, period+1, begin, end, lesson.Subject, lesson.Type.String(),
					lesson.Teacher, lesson.Attachment, lesson.Place, lesson.Online, lesson.Groups, lesson.Comment); err != nil {
					return fmt.Errorf("insert lesson: %w", err)
				}
			}
		}
	}

	return tx.Commit()
}
