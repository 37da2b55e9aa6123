package export

import (
	"fmt"
	"strings"

	"github.com/creai-labs/creai/internal/artifacts"
)

// Language describes one export target.
type Language struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
}

// Options lists the available export targets in display order.
func Options() []Language {
	return []Language{
		{ID: "javascript", Name: "JavaScript", Extension: "js"},
		{ID: "typescript", Name: "TypeScript", Extension: "tsx"},
		{ID: "python", Name: "Python", Extension: "py"},
		{ID: "cpp", Name: "C++", Extension: "cpp"},
		{ID: "java", Name: "Java", Extension: "java"},
		{ID: "csharp", Name: "C#", Extension: "cs"},
		{ID: "swift", Name: "Swift", Extension: "swift"},
		{ID: "kotlin", Name: "Kotlin", Extension: "kt"},
	}
}

// Lookup returns the language with the given ID.
func Lookup(id string) (Language, bool) {
	for _, lang := range Options() {
		if lang.ID == id {
			return lang, true
		}
	}
	return Language{}, false
}

// Convert renders the generated component code for the target language.
// This is a static template table embedding the detected component name,
// not a transpiler: only the javascript and typescript targets carry the
// original code through.
func Convert(code, langID string) string {
	name := artifacts.DetectComponentName(code)

	switch langID {
	case "javascript":
		return code
	case "typescript":
		suffix := "export default " + name + ";"
		typed := "interface " + name + "Props {}\n\n" +
			"export default " + name + " as React.FC<" + name + "Props>;"
		return strings.Replace(code, suffix, typed, 1)
	case "python":
		return pythonTemplate(name)
	case "cpp":
		return cppTemplate(name)
	case "java":
		return javaTemplate(name)
	case "csharp":
		return csharpTemplate(name)
	case "swift":
		return swiftTemplate(name)
	case "kotlin":
		return kotlinTemplate(name)
	default:
		return code
	}
}

// FileName builds a download file name following each language's naming
// convention.
func FileName(componentName string, lang Language) string {
	if componentName == "" {
		return "component." + lang.Extension
	}
	switch lang.ID {
	case "python", "cpp":
		return strings.ToLower(componentName) + "." + lang.Extension
	default:
		return componentName + "." + lang.Extension
	}
}

func pythonTemplate(name string) string {
	return fmt.Sprintf(`# Python equivalent using Streamlit
import streamlit as st

def %[1]s():
    """A Python implementation of the component using Streamlit"""
    st.title("%[1]s")

    with st.container():
        st.markdown('<div class="component-container">', unsafe_allow_html=True)
        st.write("This is the %[1]s component")
        if st.button("Action Button"):
            st.success("Button clicked!")
        st.markdown('</div>', unsafe_allow_html=True)

if __name__ == "__main__":
    %[1]s()
`, name)
}

func cppTemplate(name string) string {
	return fmt.Sprintf(`// C++ equivalent using Qt framework
#include <QApplication>
#include <QWidget>
#include <QVBoxLayout>
#include <QLabel>
#include <QPushButton>

class %[1]s : public QWidget {
public:
    %[1]s(QWidget *parent = nullptr) : QWidget(parent) {
        QVBoxLayout *layout = new QVBoxLayout(this);

        QLabel *titleLabel = new QLabel("%[1]s", this);
        titleLabel->setStyleSheet("font-size: 18px; font-weight: bold;");
        layout->addWidget(titleLabel);

        QPushButton *button = new QPushButton("Action Button", this);
        layout->addWidget(button);

        setLayout(layout);
        connect(button, &QPushButton::clicked, this, &%[1]s::onButtonClicked);
    }

private slots:
    void onButtonClicked() {
        qDebug("Button clicked!");
    }
};

int main(int argc, char *argv[]) {
    QApplication app(argc, argv);

    %[1]s widget;
    widget.resize(400, 300);
    widget.setWindowTitle("%[1]s");
    widget.show();

    return app.exec();
}
`, name)
}

func javaTemplate(name string) string {
	return fmt.Sprintf(`// Java equivalent using JavaFX
import javafx.application.Application;
import javafx.geometry.Insets;
import javafx.scene.Scene;
import javafx.scene.control.Button;
import javafx.scene.control.Label;
import javafx.scene.layout.VBox;
import javafx.stage.Stage;

public class %[1]s extends Application {

    @Override
    public void start(Stage primaryStage) {
        VBox container = new VBox(10);
        container.setPadding(new Insets(16));

        Label titleLabel = new Label("%[1]s");
        titleLabel.setStyle("-fx-font-size: 18px; -fx-font-weight: bold;");

        Button actionButton = new Button("Action Button");
        actionButton.setOnAction(e -> System.out.println("Button clicked!"));

        container.getChildren().addAll(titleLabel, actionButton);

        primaryStage.setTitle("%[1]s");
        primaryStage.setScene(new Scene(container, 400, 300));
        primaryStage.show();
    }

    public static void main(String[] args) {
        launch(args);
    }
}
`, name)
}

func csharpTemplate(name string) string {
	return fmt.Sprintf(`// C# equivalent using WPF
using System;
using System.Windows;
using System.Windows.Controls;

namespace ComponentApp
{
    public partial class %[1]s : Window
    {
        public %[1]s()
        {
            Title = "%[1]s";
            Width = 400;
            Height = 300;

            var container = new StackPanel { Margin = new Thickness(16) };

            container.Children.Add(new Label
            {
                Content = "%[1]s",
                FontSize = 18,
                FontWeight = FontWeights.Bold
            });

            var actionButton = new Button { Content = "Action Button" };
            actionButton.Click += (sender, e) => MessageBox.Show("Button clicked!");
            container.Children.Add(actionButton);

            Content = container;
        }

        [STAThread]
        static void Main()
        {
            var app = new Application();
            app.Run(new %[1]s());
        }
    }
}
`, name)
}

func swiftTemplate(name string) string {
	return fmt.Sprintf(`// Swift equivalent using SwiftUI
import SwiftUI

struct %[1]s: View {
    var body: some View {
        VStack(alignment: .leading, spacing: 16) {
            Text("%[1]s")
                .font(.title)
                .fontWeight(.bold)

            Button(action: {
                print("Button clicked!")
            }) {
                Text("Action Button")
                    .padding(.horizontal, 16)
                    .padding(.vertical, 8)
                    .foregroundColor(.white)
                    .background(Color.blue)
                    .cornerRadius(4)
            }

            Spacer()
        }
        .padding(16)
    }
}

@main
struct %[1]sApp: App {
    var body: some Scene {
        WindowGroup {
            %[1]s()
        }
    }
}
`, name)
}

func kotlinTemplate(name string) string {
	return fmt.Sprintf(`// Kotlin equivalent using Jetpack Compose
import androidx.appcompat.app.AppCompatActivity
import android.os.Bundle
import androidx.activity.compose.setContent
import androidx.compose.foundation.layout.*
import androidx.compose.material.*
import androidx.compose.runtime.Composable
import androidx.compose.ui.Modifier
import androidx.compose.ui.text.font.FontWeight
import androidx.compose.ui.unit.dp
import androidx.compose.ui.unit.sp

class MainActivity : AppCompatActivity() {
    override fun onCreate(savedInstanceState: Bundle?) {
        super.onCreate(savedInstanceState)
        setContent {
            %[1]s()
        }
    }
}

@Composable
fun %[1]s() {
    Column(modifier = Modifier.padding(16.dp)) {
        Text(
            text = "%[1]s",
            fontSize = 18.sp,
            fontWeight = FontWeight.Bold
        )

        Button(onClick = { println("Button clicked!") }) {
            Text("Action Button")
        }
    }
}
`, name)
}
