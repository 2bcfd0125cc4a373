package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"momentum/internal/service"
)

func init() {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the periodic insight refresh in the foreground",
		Long:  "Regenerates insights on the configured interval ($INSIGHT_INTERVAL_HOURS, default 24h) until interrupted.",
		Run:   runWatch,
	}

	RootCmd.AddCommand(cmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(a.cfg.InsightInterval, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		insights, err := a.insights.Generate(jobCtx, a.user())
		if err != nil {
			log.Printf("insight refresh: %v", err)
			return
		}
		log.Printf("insight refresh: %d new insight(s)", len(insights))
	}); err != nil {
		exitErr("watch", err)
	}

	scheduler.Start()
	defer scheduler.Stop()

	log.Printf("watching; refreshing insights every %s", a.cfg.InsightInterval)
	<-ctx.Done()
	log.Println("shutdown complete")
}
